package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ABC Incident Dashboard API",
        "description": "Role-based ABC incident logging and analytics for behaviour-support staff",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Session", "description": "Profile selection and page navigation"},
        {"name": "Directory", "description": "Staff and student catalogs"},
        {"name": "Incidents", "description": "ABC incident logging"},
        {"name": "Analytics", "description": "Aggregated behaviour metrics"},
        {"name": "Reports", "description": "CSV and PDF exports"}
    ],
    "paths": {
        "/session": {
            "get": {
                "tags": ["Session"],
                "summary": "Current session state and resolved view",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/session/profile": {
            "post": {
                "tags": ["Session"],
                "summary": "Select a staff profile (mock login, no credential check)",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown staff id"}
                }
            }
        },
        "/session/navigate": {
            "post": {
                "tags": ["Session"],
                "summary": "Move the session to a target page",
                "responses": {
                    "200": {"description": "Resolved view, possibly after a guard redirect"},
                    "400": {"description": "Unknown page or sub-page"}
                }
            }
        },
        "/staff": {
            "get": {
                "tags": ["Directory"],
                "summary": "List selectable staff profiles",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students": {
            "get": {
                "tags": ["Directory"],
                "summary": "List students visible to the session's role",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Directory"],
                "summary": "Student detail with recent analytics",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown student id"}
                }
            }
        },
        "/catalog": {
            "get": {
                "tags": ["Directory"],
                "summary": "Fixed incident category enumerations",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/incidents": {
            "get": {
                "tags": ["Incidents"],
                "summary": "Recent incidents filtered by student and window",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Incidents"],
                "summary": "Log a new ABC incident",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error naming the missing field(s)"}
                }
            }
        },
        "/analytics/summary": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Headline metrics for a student or the whole school",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics/trend": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Daily incident counts, ascending by date",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics/breakdown": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Category frequency breakdown, descending by count",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unknown breakdown field"}
                }
            }
        },
        "/reports/incidents.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download filtered incidents as CSV",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/incidents.pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download filtered incidents as PDF",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
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
