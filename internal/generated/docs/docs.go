// Package docs registers the API document with swag so that echo-swagger
// can serve it under /swagger.
package docs

import (
	"foodies/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Foodies order lifecycle API",
	Description:      "Orders, payments and delivery assignment for the foodies platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  "{}",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	if doc, err := servers.GetSwagger(); err == nil {
		if raw, err := doc.MarshalJSON(); err == nil {
			SwaggerInfo.SwaggerTemplate = string(raw)
		}
	}
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
