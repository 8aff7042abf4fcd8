package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level is a severity flag. Every defined level occupies its own bit so a
// set of enabled levels fits in one integer mask.
type Level uint8

const (
	// NoLevel tags calls that are not severity gated
	NoLevel Level = 0
	// ErrorLevel for failures
	ErrorLevel Level = 1 << 0
	// WarnLevel for suspicious but recoverable conditions
	WarnLevel Level = 1 << 1
	// NoticeLevel for normal but significant conditions
	NoticeLevel Level = 1 << 2
	// InfoLevel for progress information
	InfoLevel Level = 1 << 3
	// DebugLevel for detailed tracing
	DebugLevel Level = 1 << 4
)

const (
	// LevelCount is the number of reserved bit positions. Only five are
	// assigned; the sixth is unused.
	LevelCount = 6

	// AllLevels enables every defined level
	AllLevels = int(ErrorLevel | WarnLevel | NoticeLevel | InfoLevel | DebugLevel)

	// DefaultMask is the mask a Gate starts with unless configured otherwise
	DefaultMask = int(ErrorLevel | WarnLevel | NoticeLevel)

	// LevelEnv names the environment variable that seeds the process-wide mask
	LevelEnv = "DBGLOG_LEVEL"
)

// Levels lists the defined levels from most to least severe
var Levels = [...]Level{ErrorLevel, WarnLevel, NoticeLevel, InfoLevel, DebugLevel}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoLevel:
		return "NONE"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case NoticeLevel:
		return "NOTICE"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Short forms ("err",
// "warning") are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "NOTICE":
		return NoticeLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	default:
		return NoLevel, errors.Errorf("unknown level %q", s)
	}
}

// ParseMask converts a textual mask to its integer form. It accepts an
// integer literal ("12", "0x1f"), "all", "none", or level names separated
// by commas or pipes ("err,warn|notice").
func ParseMask(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return 0, errors.New("empty level mask")
	case "all", "*":
		return AllLevels, nil
	case "none", "off":
		return 0, nil
	}

	if n, err := strconv.ParseInt(s, 0, 32); err == nil {
		return int(n), nil
	}

	mask := 0
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		lvl, err := ParseLevel(name)
		if err != nil {
			return 0, errors.Wrapf(err, "parse mask %q", s)
		}
		mask |= int(lvl)
	}
	return mask, nil
}

// FormatMask renders the enabled levels of mask as a comma separated list
func FormatMask(mask int) string {
	var names []string
	for _, lvl := range Levels {
		if mask&int(lvl) != 0 {
			names = append(names, strings.ToLower(lvl.String()))
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
