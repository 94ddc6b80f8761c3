package styles

// Toast icons, one per category.
const (
	IconToastSuccess = "✔"
	IconToastError   = "✖"
	IconToastInfo    = "ℹ"
	IconToastWarning = "⚠"
	IconPersistent   = "•"
)
