package layers

const (
	ModalWidthNumerator = 3
	ModalWidthDivisor   = 5 // 3/5 = 60% of screen width
	ModalScreenMargin   = 2

	HelpMinWidth   = 44
	HelpMaxWidth   = 72
	StatsMinWidth  = 50
	StatsMaxWidth  = 70
	DetailMinWidth = 40
	DetailMaxWidth = 80
	ConfirmWidth   = 48
)
