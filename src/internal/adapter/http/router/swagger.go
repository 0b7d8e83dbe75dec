package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Branch Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Branch Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/customers": {
      "post": {
        "summary": "Register customer",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/RegisterCustomerRequest" }
            }
          }
        },
        "responses": {
          "201": { "description": "Customer registered" },
          "400": { "description": "Validation failed" },
          "409": { "description": "Customer already exists" }
        }
      }
    },
    "/customers/{nationalId}/accounts": {
      "get": {
        "summary": "Accounts owned by a customer",
        "parameters": [{ "$ref": "#/components/parameters/NationalID" }],
        "responses": {
          "200": { "description": "Accounts in creation order" },
          "404": { "description": "Customer not found" }
        }
      }
    },
    "/customers/{nationalId}/statement": {
      "get": {
        "summary": "Statement of the customer's first account",
        "parameters": [{ "$ref": "#/components/parameters/NationalID" }],
        "responses": {
          "200": { "description": "Statement" },
          "404": { "description": "Customer or account not found" }
        }
      }
    },
    "/accounts": {
      "get": {
        "summary": "List accounts",
        "responses": {
          "200": { "description": "Accounts in creation order" }
        }
      },
      "post": {
        "summary": "Open account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/OpenAccountRequest" }
            }
          }
        },
        "responses": {
          "201": { "description": "Account opened" },
          "404": { "description": "Customer not found" }
        }
      }
    },
    "/deposits": {
      "post": {
        "summary": "Deposit into the customer's first account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/PostingRequest" }
            }
          }
        },
        "responses": {
          "200": { "description": "Funds deposited" },
          "400": { "description": "Invalid amount" },
          "404": { "description": "Customer or account not found" }
        }
      }
    },
    "/withdrawals": {
      "post": {
        "summary": "Withdraw from the customer's first account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/PostingRequest" }
            }
          }
        },
        "responses": {
          "200": { "description": "Funds withdrawn" },
          "400": { "description": "Invalid amount" },
          "404": { "description": "Customer or account not found" },
          "422": { "description": "Insufficient funds, limit exceeded or withdrawal count exceeded" }
        }
      }
    }
  },
  "components": {
    "parameters": {
      "NationalID": {
        "name": "nationalId",
        "in": "path",
        "required": true,
        "schema": { "type": "string" }
      }
    },
    "schemas": {
      "RegisterCustomerRequest": {
        "type": "object",
        "required": ["name", "nationalId"],
        "properties": {
          "name": { "type": "string" },
          "birthDate": { "type": "string", "example": "31-12-1990" },
          "nationalId": { "type": "string" },
          "address": { "type": "string" }
        }
      },
      "OpenAccountRequest": {
        "type": "object",
        "required": ["nationalId"],
        "properties": {
          "nationalId": { "type": "string" }
        }
      },
      "PostingRequest": {
        "type": "object",
        "required": ["nationalId", "amount"],
        "properties": {
          "nationalId": { "type": "string" },
          "amount": { "type": "string", "example": "150.00" }
        }
      }
    }
  }
}`
