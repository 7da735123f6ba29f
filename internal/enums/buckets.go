package enums

const (
	FILE_BUCKET_BOARD_IMAGES = "board-images"
)
