package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCopy    = "📋"
	IconSave    = "💾"
	IconRefresh = "⟳"
	IconError   = "❌"
)

// Notification behavior. Warnings linger longer so a restricted-page
// explanation can actually be read.
const (
	NotificationAutoHide     = 3 * time.Second
	NotificationWarnAutoHide = 5 * time.Second
)

// Layout sizing
const (
	QRAreaMinSide float32 = 200
	URLMaxDisplay         = 80
)
