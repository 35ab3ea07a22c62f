package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Civic Portal API",
        "description": "Municipal e-governance portal backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Citizen", "description": "Citizen accounts, submissions and profile"},
        {"name": "Admin", "description": "Administrator review and portal management"},
        {"name": "News", "description": "Public scrolling news feed"},
        {"name": "Files", "description": "Signed attachment downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unavailable"}
                }
            }
        },
        "/citizen-register": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Register citizen",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterCitizenRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Mobile already registered or payload invalid"}
                }
            }
        },
        "/citizen-login": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Citizen login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/admin-login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Administrator login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Destroy session",
                "responses": {
                    "200": {"description": "Logged out"},
                    "500": {"description": "Session destroy failed"}
                }
            }
        },
        "/get-profile": {
            "get": {
                "tags": ["Citizen"],
                "summary": "Fetch own profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Not logged in"},
                    "404": {"description": "Citizen record missing"}
                }
            }
        },
        "/update-profile": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Update own profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "400": {"description": "Full name and email are required"}
                }
            }
        },
        "/change-password": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Change own password",
                "responses": {
                    "200": {"description": "Updated"},
                    "400": {"description": "Password too short"}
                }
            }
        },
        "/submit-complaint": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Submit complaint",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "type": "file", "required": false}
                ],
                "responses": {
                    "200": {"description": "Submitted"},
                    "401": {"description": "Not logged in"},
                    "404": {"description": "Citizen record missing"}
                }
            }
        },
        "/submit-event-request": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Submit event permission request",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "uploadDoc", "in": "formData", "type": "file", "required": false}
                ],
                "responses": {
                    "200": {"description": "Submitted"},
                    "401": {"description": "Not logged in"},
                    "404": {"description": "Citizen record missing"}
                }
            }
        },
        "/submit-health-camp": {
            "post": {
                "tags": ["Citizen"],
                "summary": "Submit health camp request",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "uploadProposal", "in": "formData", "type": "file", "required": false}
                ],
                "responses": {
                    "201": {"description": "Submitted"},
                    "401": {"description": "Not logged in"},
                    "404": {"description": "Citizen record missing"}
                }
            }
        },
        "/get-complaints": {
            "get": {
                "tags": ["Citizen"],
                "summary": "List own complaints",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/get-event-permissions": {
            "get": {
                "tags": ["Citizen"],
                "summary": "List own event permission requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/get-healthcamps": {
            "get": {
                "tags": ["Citizen"],
                "summary": "List own health camp requests",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/delete-complaint/{id}": {
            "delete": {
                "tags": ["Citizen"],
                "summary": "Delete own complaint",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        },
        "/delete-event-permission/{id}": {
            "delete": {
                "tags": ["Citizen"],
                "summary": "Delete own event permission request",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        },
        "/delete-healthcamp/{id}": {
            "delete": {
                "tags": ["Citizen"],
                "summary": "Delete own health camp request",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found or not owned"}
                }
            }
        },
        "/api/get-active-scrolling-news": {
            "get": {
                "tags": ["News"],
                "summary": "Public scrolling news feed",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/files/{token}": {
            "get": {
                "tags": ["Files"],
                "summary": "Download attachment by signed token",
                "parameters": [
                    {"name": "token", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "File stream"},
                    "404": {"description": "Token invalid or expired"}
                }
            }
        },
        "/admin/dashboard-counts": {
            "get": {
                "tags": ["Admin"],
                "summary": "Dashboard record counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Admin session required"}
                }
            }
        },
        "/admin/get-complaints": {
            "get": {
                "tags": ["Admin"],
                "summary": "List complaints",
                "parameters": [
                    {"name": "ward", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/update-complaint-status/{id}": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Update complaint status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Record or citizen missing"}
                }
            }
        },
        "/admin/get-event-permissions": {
            "get": {
                "tags": ["Admin"],
                "summary": "List event permission requests",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/update-event-permission-status/{id}": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Update event permission status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Record or citizen missing"}
                }
            }
        },
        "/admin/get-health-camp-requests": {
            "get": {
                "tags": ["Admin"],
                "summary": "List health camp requests",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/update-health-camp-status/{id}": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Update health camp status",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Record missing"}
                }
            }
        },
        "/admin/get-citizens": {
            "get": {
                "tags": ["Admin"],
                "summary": "List registered citizens",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "ward", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/export-complaints": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export complaint register",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/admin/export-citizens": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export citizen roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/admin/get-scrolling-news": {
            "get": {
                "tags": ["Admin"],
                "summary": "List scrolling news",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/add-scrolling-news-item": {
            "post": {
                "tags": ["Admin"],
                "summary": "Add scrolling news item",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Message shorter than 5 characters"}
                }
            }
        },
        "/admin/update-scrolling-news-item/{id}": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Update scrolling news item",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/admin/delete-scrolling-news-item/{id}": {
            "delete": {
                "tags": ["Admin"],
                "summary": "Delete scrolling news item",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "definitions": {
        "RegisterCitizenRequest": {
            "type": "object",
            "required": ["firstName", "mobile", "ward", "email", "address", "password"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "mobile": {"type": "string"},
                "ward": {"type": "string"},
                "email": {"type": "string"},
                "address": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "required": ["fullName", "email"],
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "ward": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
