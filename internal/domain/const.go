package domain

const (
	// UNTITLED_PLACEHOLDER is the title used when no provider supplies one
	UNTITLED_PLACEHOLDER = "Untitled"

	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)
