package msgs

const (
	MsgOperationSuccessful        = "operation successful"
	MsgOperationFailed            = "operation failed"
	MsgBoardCreatedSuccessfully   = "board created successfully"
	MsgBoardDeletedSuccessfully   = "board deleted successfully"
	MsgItemDeletedSuccessfully    = "board item deleted successfully"
	MsgBoardsReorderedSuccessfuly = "boards reordered successfully"
	MsgStorageNotConfigured       = "object storage is not configured (missing minio credentials)"
)
