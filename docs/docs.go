// Package docs registers the swagger specification served at /docs.
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
        "/healthcheck": {
            "get": {
                "produces": ["application/json"],
                "tags": ["healthcheck"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {"type": "string", "name": "fullName", "in": "formData", "required": true},
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "file", "name": "avatar", "in": "formData", "required": true},
                    {"type": "file", "name": "coverImage", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Log in with username or email",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/refresh-token": {
            "post": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Rotate the access/refresh token pair",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Log out and clear auth cookies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/change-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Change the current user's password",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/current-user": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Fetch the authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/update-account": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update full name or email",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/avatar": {
            "patch": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Replace the avatar image",
                "parameters": [
                    {"type": "file", "name": "avatar", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/cover-image": {
            "patch": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Replace the cover image",
                "parameters": [
                    {"type": "file", "name": "coverImage", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Watch history with owner profiles joined",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/users/c/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Channel profile with subscriber counts",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/videos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "List published videos",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "query", "in": "query"},
                    {"type": "string", "name": "userId", "in": "query"},
                    {"type": "string", "name": "sortBy", "in": "query"},
                    {"type": "string", "name": "sortType", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Publish a video",
                "parameters": [
                    {"type": "string", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData", "required": true},
                    {"type": "number", "name": "duration", "in": "formData"},
                    {"type": "file", "name": "videoFile", "in": "formData", "required": true},
                    {"type": "file", "name": "thumbnail", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/videos/{videoId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Fetch a video and count the view",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "patch": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Update title, description or thumbnail",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Delete a video with its comments, likes and media",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/videos/toggle/publish/{videoId}": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Flip the publish flag",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/comments/{videoId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments on a video",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Add a comment to a video",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/comments/c/{commentId}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Edit a comment",
                "parameters": [
                    {"type": "string", "name": "commentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Delete a comment and its likes",
                "parameters": [
                    {"type": "string", "name": "commentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/tweets": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tweets"],
                "summary": "Post a tweet",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/tweets/user/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tweets"],
                "summary": "List a user's tweets",
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/tweets/{tweetId}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tweets"],
                "summary": "Edit a tweet",
                "parameters": [
                    {"type": "string", "name": "tweetId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tweets"],
                "summary": "Delete a tweet and its likes",
                "parameters": [
                    {"type": "string", "name": "tweetId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/likes/toggle/v/{videoId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Toggle a like on a video",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/likes/toggle/c/{commentId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Toggle a like on a comment",
                "parameters": [
                    {"type": "string", "name": "commentId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/likes/toggle/t/{tweetId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Toggle a like on a tweet",
                "parameters": [
                    {"type": "string", "name": "tweetId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/likes/videos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "List videos liked by the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/playlists": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Create a playlist",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/playlists/user/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "List a user's playlists",
                "parameters": [
                    {"type": "string", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/playlists/{playlistId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Fetch a playlist with its videos",
                "parameters": [
                    {"type": "string", "name": "playlistId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Rename a playlist or edit its description",
                "parameters": [
                    {"type": "string", "name": "playlistId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Delete a playlist",
                "parameters": [
                    {"type": "string", "name": "playlistId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/playlists/add/{videoId}/{playlistId}": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Add a video to a playlist",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "name": "playlistId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/playlists/remove/{videoId}/{playlistId}": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Remove a video from a playlist",
                "parameters": [
                    {"type": "string", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "name": "playlistId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/subscriptions/c/{channelId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Toggle a subscription to a channel",
                "parameters": [
                    {"type": "string", "name": "channelId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List a channel's subscribers",
                "parameters": [
                    {"type": "string", "name": "channelId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/subscriptions/u/{subscriberId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List channels a user is subscribed to",
                "parameters": [
                    {"type": "string", "name": "subscriberId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Channel statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        },
        "/dashboard/videos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "The channel's own videos with like totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ApiResponse": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "vidtube API",
	Description:      "Video sharing platform backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
