package redis

const (
	REDIS_CHANNEL_BOARD_ITEMS = "board_items_channel"
)
