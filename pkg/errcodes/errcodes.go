package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Catalog
	GameNotFound  failure.ErrorCode = "GameNotFound"
	ItemNotFound  failure.ErrorCode = "ItemNotFound"
	InvalidGameID failure.ErrorCode = "InvalidGameID"
	InvalidItemID failure.ErrorCode = "InvalidItemID"

	// Trades and voting
	TradeNotFound   failure.ErrorCode = "TradeNotFound"
	InvalidTradeID  failure.ErrorCode = "InvalidTradeID"
	IncompleteTrade failure.ErrorCode = "IncompleteTrade"
	InvalidVote     failure.ErrorCode = "InvalidVote"
	VoteConflict    failure.ErrorCode = "VoteConflict"

	// Price alerts
	AlertNotFound      failure.ErrorCode = "AlertNotFound"
	InvalidAlertID     failure.ErrorCode = "InvalidAlertID"
	InvalidCondition   failure.ErrorCode = "InvalidCondition"
	InvalidTargetValue failure.ErrorCode = "InvalidTargetValue"

	// Inventory
	InvalidQuantity       failure.ErrorCode = "InvalidQuantity"
	InventoryItemNotFound failure.ErrorCode = "InventoryItemNotFound"
)
