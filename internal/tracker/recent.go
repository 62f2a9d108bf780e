package tracker

// maxRecentApps bounds the quick-add suggestion list in the config file.
const maxRecentApps = 10

// PushRecent inserts app at the front of the recent-apps list, removing any
// earlier occurrence and capping the length. The sentinel app is ignored.
func PushRecent(recent []string, app string) []string {
	if app == "" || app == UnknownApp {
		return recent
	}
	out := make([]string, 0, len(recent)+1)
	out = append(out, app)
	for _, r := range recent {
		if r != app {
			out = append(out, r)
		}
	}
	if len(out) > maxRecentApps {
		out = out[:maxRecentApps]
	}
	return out
}
