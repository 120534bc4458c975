package constant

const (
	EventStyleBoardGenerated = "STYLE_BOARD_GENERATED"
	EventWardrobeItemCreated = "WARDROBE_ITEM_CREATED"
)
