package enums

const (
	SOCKET_EVENT_SELECT_ITEM      = "select_item"
	SOCKET_EVENT_CLICK_CANVAS     = "click_canvas"
	SOCKET_EVENT_DBL_CLICK_CANVAS = "dbl_click_canvas"
	SOCKET_EVENT_DRAG_END         = "drag_end"
	SOCKET_EVENT_TRANSFORM_END    = "transform_end"
	SOCKET_EVENT_EDIT_TEXT        = "edit_text"
	SOCKET_EVENT_CLOSE_EDITOR     = "close_editor"
	SOCKET_EVENT_KEY_DELETE       = "key_delete"
	SOCKET_EVENT_PASTE            = "paste"
	SOCKET_EVENT_VIEWPORT         = "viewport"
	SOCKET_EVENT_ITEMS_CHANGED    = "items_changed"
)
