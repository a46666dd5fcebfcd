package vitug

import "os"

var osLookupEnv = os.LookupEnv

// Settings names the external programs vitug hands files to.
type Settings struct {
	Editor string
	Pager  string
	Shell  string
	Viewer string

	// Preview shows the selected file next to the listing.
	Preview bool
}

func DefaultSettings() Settings {
	return Settings{
		Editor: "vim",
		Pager:  "less",
		Shell:  "bash",
		Viewer: "bat",
	}
}

// WithEnv overrides programs with $EDITOR, $PAGER and $SHELL when set.
func (s Settings) WithEnv() Settings {
	for name, field := range map[string]*string{
		"EDITOR": &s.Editor,
		"PAGER":  &s.Pager,
		"SHELL":  &s.Shell,
	} {
		if v, ok := osLookupEnv(name); ok && v != "" {
			*field = v
		}
	}
	return s
}
