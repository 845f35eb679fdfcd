package catalog

import (
	"strings"
)

// Icon is a supported display icon. The zero value is IconSparkles, the default.
type Icon uint8

// Supported icons
const (
	IconSparkles Icon = iota
	IconActivity
	IconAlignLeft
	IconApple
	IconBaby
	IconBarChart
	IconBookOpen
	IconBot
	IconBriefcase
	IconBug
	IconCalendar
	IconCalendarCheck
	IconCamera
	IconCheckCircle
	IconCheckSquare
	IconClipboardList
	IconCode
	IconDatabase
	IconDollarSign
	IconFeather
	IconFileText
	IconFlame
	IconGitCommit
	IconGraduationCap
	IconHash
	IconHeading
	IconHeart
	IconHeartHandshake
	IconImage
	IconInstagram
	IconLayers
	IconLightbulb
	IconLinkedin
	IconListChecks
	IconMail
	IconMaximize
	IconMegaphone
	IconMessageCircle
	IconMic
	IconMinimize
	IconMonitor
	IconPalette
	IconPenLine
	IconPresentation
	IconQuote
	IconRefreshCw
	IconRegex
	IconRocket
	IconRuler
	IconSearch
	IconSend
	IconShare2
	IconShoppingBag
	IconSmartphone
	IconSmile
	IconStar
	IconTag
	IconTarget
	IconTwitter
	IconType
	IconUserCircle
	IconUsers
	IconVideo
	IconWallet
	IconWrench
	IconZap

	iconCount
)

var iconNames = [iconCount]string{
	IconSparkles:       "Sparkles",
	IconActivity:       "Activity",
	IconAlignLeft:      "AlignLeft",
	IconApple:          "Apple",
	IconBaby:           "Baby",
	IconBarChart:       "BarChart",
	IconBookOpen:       "BookOpen",
	IconBot:            "Bot",
	IconBriefcase:      "Briefcase",
	IconBug:            "Bug",
	IconCalendar:       "Calendar",
	IconCalendarCheck:  "CalendarCheck",
	IconCamera:         "Camera",
	IconCheckCircle:    "CheckCircle",
	IconCheckSquare:    "CheckSquare",
	IconClipboardList:  "ClipboardList",
	IconCode:           "Code",
	IconDatabase:       "Database",
	IconDollarSign:     "DollarSign",
	IconFeather:        "Feather",
	IconFileText:       "FileText",
	IconFlame:          "Flame",
	IconGitCommit:      "GitCommit",
	IconGraduationCap:  "GraduationCap",
	IconHash:           "Hash",
	IconHeading:        "Heading",
	IconHeart:          "Heart",
	IconHeartHandshake: "HeartHandshake",
	IconImage:          "Image",
	IconInstagram:      "Instagram",
	IconLayers:         "Layers",
	IconLightbulb:      "Lightbulb",
	IconLinkedin:       "Linkedin",
	IconListChecks:     "ListChecks",
	IconMail:           "Mail",
	IconMaximize:       "Maximize",
	IconMegaphone:      "Megaphone",
	IconMessageCircle:  "MessageCircle",
	IconMic:            "Mic",
	IconMinimize:       "Minimize",
	IconMonitor:        "Monitor",
	IconPalette:        "Palette",
	IconPenLine:        "PenLine",
	IconPresentation:   "Presentation",
	IconQuote:          "Quote",
	IconRefreshCw:      "RefreshCw",
	IconRegex:          "Regex",
	IconRocket:         "Rocket",
	IconRuler:          "Ruler",
	IconSearch:         "Search",
	IconSend:           "Send",
	IconShare2:         "Share2",
	IconShoppingBag:    "ShoppingBag",
	IconSmartphone:     "Smartphone",
	IconSmile:          "Smile",
	IconStar:           "Star",
	IconTag:            "Tag",
	IconTarget:         "Target",
	IconTwitter:        "Twitter",
	IconType:           "Type",
	IconUserCircle:     "UserCircle",
	IconUsers:          "Users",
	IconVideo:          "Video",
	IconWallet:         "Wallet",
	IconWrench:         "Wrench",
	IconZap:            "Zap",
}

var iconsByKey = func() map[string]Icon {
	m := make(map[string]Icon, iconCount)
	for i, name := range iconNames {
		m[iconKey(name)] = Icon(i)
	}
	return m
}()

// iconKey folds case and separators so "bar-chart" and "BarChart" agree
func iconKey(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// ParseIcon maps a name to an Icon. Unknown names map to IconSparkles.
func ParseIcon(name string) Icon {
	if icon, ok := iconsByKey[iconKey(name)]; ok {
		return icon
	}
	return IconSparkles
}

// LookupIcon is ParseIcon that also reports whether the name was recognized
func LookupIcon(name string) (Icon, bool) {
	icon, ok := iconsByKey[iconKey(name)]
	if !ok {
		return IconSparkles, false
	}
	return icon, true
}

// Icons returns every supported icon
func Icons() []Icon {
	out := make([]Icon, iconCount)
	for i := range out {
		out[i] = Icon(i)
	}
	return out
}

func (i Icon) String() string {
	if i >= iconCount {
		return iconNames[IconSparkles]
	}
	return iconNames[i]
}

// MarshalText implements encoding.TextMarshaler
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (i *Icon) UnmarshalText(text []byte) error {
	*i = ParseIcon(string(text))
	return nil
}
