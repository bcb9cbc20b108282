// Package recording defines the raw examples a test suite records while it
// exercises an HTTP API, and reads and writes them as YAML.
//
// A recording file holds either a single example or a list of examples, and
// may contain several YAML documents:
//
//	- description: Create a widget
//	  resource_name: Widgets
//	  http_method: POST
//	  route: /widgets
//	  public: true
//	  document: [public_api]
//	  requests:
//	    - request_method: POST
//	      request_path: /widgets
//	      request_body: '{"name":"gear"}'
//	      response_status: 201
//
// The documentation aggregator never modifies these values; it only wraps them.
package recording
