package example

import (
	"slices"

	"github.com/lockstate/rspec-api-documentation/pkg/recording"
)

// Metadata is the data mapping handed to templates. Every key is always
// present so templates can test values without tripping over missing keys.
func (e *Example) Metadata() map[string]interface{} {
	raw := e.raw
	requests := make([]map[string]interface{}, 0, len(raw.Requests))
	for _, req := range raw.Requests {
		requests = append(requests, requestMetadata(req))
	}

	return map[string]interface{}{
		"api_name":        e.apiName,
		"description":     raw.Description,
		"resource_name":   raw.ResourceName,
		"http_method":     raw.HTTPMethod,
		"route":           raw.Route,
		"explanation":     raw.Explanation,
		"public":          raw.Public,
		"tags":            raw.Document.Names,
		"dirname":         e.Dirname(),
		"filename":        e.Filename(),
		"parameters":      parameterMetadata(raw.Parameters),
		"response_fields": parameterMetadata(raw.ResponseFields),
		"requests":        requests,
	}
}

func parameterMetadata(params []recording.Parameter) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(params))
	for _, p := range params {
		fullName := p.Name
		if p.Scope != "" {
			fullName = p.Scope + "[" + p.Name + "]"
		}
		out = append(out, map[string]interface{}{
			"name":        p.Name,
			"full_name":   fullName,
			"description": p.Description,
			"type":        p.Type,
			"scope":       p.Scope,
			"required":    p.Required,
		})
	}
	return out
}

func requestMetadata(req recording.Request) map[string]interface{} {
	return map[string]interface{}{
		"request_method":           req.Method,
		"request_path":             req.Path,
		"request_query_parameters": pairs(req.QueryParameters),
		"request_headers":          pairs(req.Headers),
		"request_body":             formatBody(req.Body, req.ContentType),
		"request_content_type":     req.ContentType,
		"response_status":          req.ResponseStatus,
		"response_status_text":     req.ResponseStatusText,
		"response_headers":         pairs(req.ResponseHeaders),
		"response_body":            formatBody(req.ResponseBody, req.ResponseContentType),
		"response_content_type":    req.ResponseContentType,
		"curl":                     req.Curl,
	}
}

// pairs turns a map into name/value entries sorted by name
func pairs(m map[string]string) []map[string]string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)

	out := make([]map[string]string, 0, len(names))
	for _, k := range names {
		out = append(out, map[string]string{"name": k, "value": m[k]})
	}
	return out
}
