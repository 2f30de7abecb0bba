package styles

// Nerd Font icons used in CLI output.
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconWarning   = "\uf071" // warning
	IconInfo      = "\uf05a" // info
	IconPackage   = "\uf187" // archive/package
	IconConfig    = "\ue615" // config
)
