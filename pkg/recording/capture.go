package recording

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// Capture builds a Request from one HTTP round trip made by a test. Bodies
// are copied as text; host is used for the curl command and may be empty.
func Capture(req *http.Request, reqBody []byte, resp *http.Response, respBody []byte, host string) Request {
	r := Request{
		Method:      req.Method,
		Path:        req.URL.Path,
		Headers:     flattenHeader(req.Header),
		Body:        string(reqBody),
		ContentType: req.Header.Get("Content-Type"),
	}

	if query := req.URL.Query(); len(query) > 0 {
		r.QueryParameters = make(map[string]string, len(query))
		for k, v := range query {
			r.QueryParameters[k] = strings.Join(v, ",")
		}
	}

	if resp != nil {
		r.ResponseStatus = resp.StatusCode
		r.ResponseStatusText = http.StatusText(resp.StatusCode)
		r.ResponseHeaders = flattenHeader(resp.Header)
		r.ResponseBody = string(respBody)
		r.ResponseContentType = resp.Header.Get("Content-Type")
	}

	r.Curl = curlCommand(req.Method, host, req.URL, req.Header, reqBody)
	return r
}

func flattenHeader(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}

func curlCommand(method, host string, u *url.URL, h http.Header, body []byte) string {
	target := u.RequestURI()
	if host != "" {
		target = strings.TrimSuffix(host, "/") + target
	}

	var b strings.Builder
	b.WriteString("curl ")
	b.WriteString(shellQuote(target))
	if method != http.MethodGet {
		b.WriteString(" -X ")
		b.WriteString(method)
	}
	if len(body) > 0 {
		b.WriteString(" -d ")
		b.WriteString(shellQuote(string(body)))
	}

	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		for _, v := range h[k] {
			b.WriteString(" \\\n\t-H ")
			b.WriteString(shellQuote(k + ": " + v))
		}
	}
	return b.String()
}

func shellQuote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`").Replace(s) + `"`
}
