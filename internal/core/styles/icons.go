package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCheck    = "\uf00c"     // nf-fa-check
	IconMail     = "\ueb1c"     // nf-cod-mail
	IconStore    = "\U000F0110" // nf-md-store
	IconDocument = "\uf15c"     // nf-fa-file_text
	IconCursor   = "\u203a"     // single right angle quote
)
