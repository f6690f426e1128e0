// Package docs holds the OpenAPI description served under /swagger. It is
// maintained by hand alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/trips": {
            "post": {
                "description": "Create a trip and allocate its 4-digit join code",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Create a new trip",
                "parameters": [
                    {"description": "Trip creation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/trip.CreateTripRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/trips/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Get trip by code",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "put": {
                "description": "Rename a trip or change its dates",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Update a trip",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"description": "Trip update request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/trip.UpdateTripRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/trips/{code}/participants": {
            "get": {
                "description": "Get the trip's participants in the order they joined",
                "produces": ["application/json"],
                "tags": ["participants"],
                "summary": "List participants",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "description": "Add a participant to the trip, optionally with the number of days they attend",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["participants"],
                "summary": "Add a participant",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"description": "Participant creation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/participant.CreateParticipantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/trips/{code}/participants/{id}": {
            "put": {
                "description": "Change a participant's nickname or days in trip; an empty nickname clears it and days below 1 reset to the trip duration",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["participants"],
                "summary": "Update a participant",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "Participant ID", "name": "id", "in": "path", "required": true},
                    {"description": "Participant update request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/participant.UpdateParticipantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "delete": {
                "description": "Remove a participant who has no payments",
                "tags": ["participants"],
                "summary": "Delete a participant",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "Participant ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/trips/{code}/payments": {
            "get": {
                "description": "Get the trip's payments, most recent first",
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "List payments",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "description": "Record money a participant spent for the trip",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Record a payment",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"description": "Payment creation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/payment.CreatePaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/trips/{code}/payments/{id}": {
            "delete": {
                "tags": ["payments"],
                "summary": "Delete a payment",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "Payment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/trips/{code}/summary": {
            "get": {
                "description": "Compute every participant's balance and the transfers that settle the trip",
                "produces": ["application/json"],
                "tags": ["summary"],
                "summary": "Get trip summary",
                "parameters": [
                    {"type": "string", "description": "Trip code", "name": "code", "in": "path", "required": true},
                    {"enum": ["DAYS", "EVEN"], "type": "string", "description": "Weight mode", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "participant.CreateParticipantRequest": {
            "type": "object",
            "properties": {
                "days_in_trip": {"type": "integer"},
                "is_admin": {"type": "boolean"},
                "name": {"type": "string"},
                "nickname": {"type": "string"}
            }
        },
        "participant.UpdateParticipantRequest": {
            "type": "object",
            "properties": {
                "days_in_trip": {"type": "integer"},
                "nickname": {"type": "string"}
            }
        },
        "payment.CreatePaymentRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "note": {"type": "string"},
                "paid_at": {"type": "string"},
                "paid_by_id": {"type": "string"}
            }
        },
        "response.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/response.APIError"},
                "meta": {"$ref": "#/definitions/response.Meta"},
                "success": {"type": "boolean"}
            }
        },
        "response.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"}
            }
        },
        "trip.CreateTripRequest": {
            "type": "object",
            "properties": {
                "end_date": {"type": "string"},
                "name": {"type": "string"},
                "start_date": {"type": "string"}
            }
        },
        "trip.UpdateTripRequest": {
            "type": "object",
            "properties": {
                "end_date": {"type": "string"},
                "name": {"type": "string"},
                "start_date": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Tripsplit API",
	Description:      "Shared trip expenses: participants, payments, balances and settlements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
