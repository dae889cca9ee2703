package useragent

import "strings"

type keywordSet []string

func (s keywordSet) contains(lowerUA string) bool {
	for _, kw := range s {
		if strings.Contains(lowerUA, kw) {
			return true
		}
	}
	return false
}

// Order matters: Android headers contain "linux", iOS headers contain
// "mac os x".
var osTable = []struct {
	name     string
	keywords keywordSet
}{
	{OSWindows, keywordSet{"windows", "win98", "win95", "winnt"}},
	{OSiOS, keywordSet{"iphone", "ipad", "ipod"}},
	{OSMacOS, keywordSet{"macintosh", "mac os x", "mac_powerpc"}},
	{OSAndroid, keywordSet{"android"}},
	{OSBeOS, keywordSet{"beos"}},
	{OSHaiku, keywordSet{"haiku"}},
	{OSLinux, keywordSet{"linux", "x11", "ubuntu", "fedora"}},
}

func parseOS(lowerUA string) string {
	for _, entry := range osTable {
		if entry.keywords.contains(lowerUA) {
			return entry.name
		}
	}
	return OSUnknown
}
