package constants

const (
	MAX_IMPORT_BATCH_SIZE  = 100
	MAX_PROMOTE_IDS        = 500
	MAX_PAGE_SIZE          = 200
	DEFAULT_OFFSET         = 0
	DEFAULT_INDEX_LIMIT    = 50
	DEFAULT_ARTWORKS_LIMIT = 20
)
