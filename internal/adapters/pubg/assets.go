package pubg

import "github.com/tidwall/gjson"

// TelemetryURL extracts the telemetry asset URL from a match document: the
// entry in the included array whose type is "asset", reading its
// attributes.URL. ok is false when no such entry exists.
func (d *Document) TelemetryURL() (url string, ok bool) {
	gjson.GetBytes(d.raw, "included").ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("type").String() != "asset" {
			return true
		}

		assetURL := entry.Get("attributes.URL")
		if !assetURL.Exists() {
			return true
		}

		url = assetURL.String()
		ok = true
		return false
	})

	return url, ok
}
