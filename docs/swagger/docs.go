// Package swagger holds the OpenAPI document served under /docs.
// Regenerate with: swag init -g main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/killallgit/annotator-api"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Service information",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Unavailable",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/videos": {
            "get": {
                "tags": [
                    "videos"
                ],
                "summary": "List videos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.VideosResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "videos"
                ],
                "summary": "Register video",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Video"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Video metadata",
                        "name": "video",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.CreateVideoRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/videos/production": {
            "get": {
                "tags": [
                    "videos"
                ],
                "summary": "List production videos",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.VideosResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/videos/{id}": {
            "get": {
                "tags": [
                    "videos"
                ],
                "summary": "Get video",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Video"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "description": "Increments the view count",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "delete": {
                "tags": [
                    "videos"
                ],
                "summary": "Delete video",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.BaseResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/annotations": {
            "get": {
                "tags": [
                    "annotations"
                ],
                "summary": "List video annotations",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.AnnotationsResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "tags": [
                    "annotations"
                ],
                "summary": "Create annotation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Annotation"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Annotation",
                        "name": "annotation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.CreateAnnotationRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/annotations": {
            "get": {
                "tags": [
                    "annotations"
                ],
                "summary": "List annotations",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.AnnotationsResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/annotations/{id}": {
            "get": {
                "tags": [
                    "annotations"
                ],
                "summary": "Get annotation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Annotation"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Annotation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "tags": [
                    "annotations"
                ],
                "summary": "Update annotation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Annotation"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Annotation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "annotation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.UpdateAnnotationRequest"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "annotations"
                ],
                "summary": "Delete annotation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.BaseResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Annotation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/segments": {
            "get": {
                "tags": [
                    "segments"
                ],
                "summary": "List segments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SegmentsResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "post": {
                "tags": [
                    "segments"
                ],
                "summary": "Add segments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/types.SegmentWriteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Segments to add",
                        "name": "segments",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.AddSegmentsRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/segments/import": {
            "post": {
                "tags": [
                    "segments"
                ],
                "summary": "Import HLS playlist",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/types.SegmentWriteResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "text/plain"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "m3u8 media playlist",
                        "name": "playlist",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "string"
                        }
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/playlist.m3u8": {
            "get": {
                "tags": [
                    "segments"
                ],
                "summary": "HLS playlist",
                "produces": [
                    "application/vnd.apple.mpegurl"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/locate": {
            "get": {
                "tags": [
                    "playback"
                ],
                "summary": "Locate time",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.LocateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Global time in seconds",
                        "name": "t",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/active": {
            "get": {
                "tags": [
                    "playback"
                ],
                "summary": "Active annotations",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ActiveAnnotationsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Global time in seconds",
                        "name": "t",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/videos/{id}/click": {
            "get": {
                "tags": [
                    "playback"
                ],
                "summary": "Timeline click",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ClickResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Video ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Click position between 0 and 1",
                        "name": "fraction",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/sessions": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Create session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Video to play",
                        "name": "session",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.CreateSessionRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}": {
            "get": {
                "tags": [
                    "sessions"
                ],
                "summary": "Get session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "delete": {
                "tags": [
                    "sessions"
                ],
                "summary": "Delete session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.BaseResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/seek": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Seek",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Target time",
                        "name": "seek",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SeekRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/click": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Timeline click",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Click position",
                        "name": "click",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.ClickRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/play": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Play",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/pause": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Pause",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/rate": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Set playback rate",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Playback rate",
                        "name": "rate",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.RateRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/select": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Select annotation",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Annotation to select",
                        "name": "selection",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SelectRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/selection": {
            "delete": {
                "tags": [
                    "sessions"
                ],
                "summary": "Clear selection",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/events": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Report media event",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Media event",
                        "name": "event",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/types.SignalRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/retry": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Retry load",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/sessions/{id}/annotations/refresh": {
            "post": {
                "tags": [
                    "sessions"
                ],
                "summary": "Refresh annotations",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/media/videos/{filename}": {
            "get": {
                "tags": [
                    "media"
                ],
                "summary": "Serve video file",
                "produces": [
                    "application/octet-stream"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "File name",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "HTTP Range header",
                        "name": "Range",
                        "in": "header",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/media/segments/{filename}": {
            "get": {
                "tags": [
                    "media"
                ],
                "summary": "Serve segment file",
                "produces": [
                    "application/octet-stream"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/types.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "File name",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "HTTP Range header",
                        "name": "Range",
                        "in": "header",
                        "required": false
                    }
                ]
            }
        }
    },
    "definitions": {
        "models.Video": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "filename": {
                    "type": "string"
                },
                "original_name": {
                    "type": "string"
                },
                "mime_type": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "duration": {
                    "type": "number"
                },
                "views": {
                    "type": "integer"
                },
                "is_production": {
                    "type": "boolean"
                },
                "total_duration": {
                    "type": "number"
                },
                "is_active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Annotation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "video_id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "start_time": {
                    "type": "number"
                },
                "end_time": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "types.BaseResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "details": {
                    "type": "object"
                }
            }
        },
        "types.VideosResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "videos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Video"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "types.AnnotationsResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "annotations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Annotation"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "types.Segment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "index": {
                    "type": "integer"
                },
                "filename": {
                    "type": "string"
                },
                "start_time": {
                    "type": "number"
                },
                "end_time": {
                    "type": "number"
                },
                "duration": {
                    "type": "number"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "types.Annotation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "start_time": {
                    "type": "number"
                },
                "end_time": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "types.Discontinuity": {
            "type": "object",
            "properties": {
                "after": {
                    "type": "integer"
                },
                "before": {
                    "type": "integer"
                },
                "gap": {
                    "type": "number"
                }
            }
        },
        "types.SegmentsResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "segments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Segment"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "total_duration": {
                    "type": "number"
                }
            }
        },
        "types.SegmentWriteResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "segments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Segment"
                    }
                },
                "discontinuities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Discontinuity"
                    }
                },
                "total_duration": {
                    "type": "number"
                }
            }
        },
        "types.Location": {
            "type": "object",
            "properties": {
                "segment": {
                    "$ref": "#/definitions/types.Segment"
                },
                "position": {
                    "type": "integer"
                },
                "local_time": {
                    "type": "number"
                },
                "global_time": {
                    "type": "number"
                },
                "clamped": {
                    "type": "boolean"
                }
            }
        },
        "types.LocateResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "time": {
                    "type": "number"
                },
                "location": {
                    "$ref": "#/definitions/types.Location"
                }
            }
        },
        "types.ActiveAnnotationsResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "time": {
                    "type": "number"
                },
                "annotations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Annotation"
                    }
                }
            }
        },
        "types.ClickResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "fraction": {
                    "type": "number"
                },
                "seek_time": {
                    "type": "number"
                },
                "annotation": {
                    "$ref": "#/definitions/types.Annotation"
                }
            }
        },
        "types.SeekPlan": {
            "type": "object",
            "properties": {
                "seq": {
                    "type": "integer"
                },
                "kind": {
                    "type": "string"
                },
                "segment": {
                    "$ref": "#/definitions/types.Segment"
                },
                "local_time": {
                    "type": "number"
                },
                "global_time": {
                    "type": "number"
                },
                "resume": {
                    "type": "boolean"
                },
                "playback_rate": {
                    "type": "number"
                },
                "auto": {
                    "type": "boolean"
                }
            }
        },
        "types.Session": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "video_id": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "position": {
                    "type": "number"
                },
                "local_time": {
                    "type": "number"
                },
                "total_duration": {
                    "type": "number"
                },
                "segment": {
                    "$ref": "#/definitions/types.Segment"
                },
                "segment_position": {
                    "type": "integer"
                },
                "playback_rate": {
                    "type": "number"
                },
                "selected_id": {
                    "type": "string"
                },
                "selected": {
                    "$ref": "#/definitions/types.Annotation"
                },
                "active": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Annotation"
                    }
                },
                "seq": {
                    "type": "integer"
                },
                "pending": {
                    "$ref": "#/definitions/types.SeekPlan"
                },
                "last_error": {
                    "type": "string"
                },
                "load_attempts": {
                    "type": "integer"
                },
                "can_retry": {
                    "type": "boolean"
                }
            }
        },
        "types.SessionResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "session": {
                    "$ref": "#/definitions/types.Session"
                },
                "plan": {
                    "$ref": "#/definitions/types.SeekPlan"
                }
            }
        },
        "types.CreateVideoRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "filename": {
                    "type": "string"
                },
                "original_name": {
                    "type": "string"
                },
                "mime_type": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "duration": {
                    "type": "number"
                },
                "is_production": {
                    "type": "boolean"
                }
            },
            "required": [
                "title",
                "filename",
                "original_name",
                "mime_type"
            ]
        },
        "types.CreateAnnotationRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "start_time": {
                    "type": "number"
                },
                "end_time": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            },
            "required": [
                "title"
            ]
        },
        "types.UpdateAnnotationRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "start_time": {
                    "type": "number"
                },
                "end_time": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "types.SegmentRequest": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "start_time": {
                    "type": "number"
                },
                "end_time": {
                    "type": "number"
                },
                "duration": {
                    "type": "number"
                },
                "size": {
                    "type": "integer"
                },
                "fps": {
                    "type": "number"
                },
                "width": {
                    "type": "integer"
                },
                "height": {
                    "type": "integer"
                }
            },
            "required": [
                "filename"
            ]
        },
        "types.AddSegmentsRequest": {
            "type": "object",
            "properties": {
                "segments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.SegmentRequest"
                    }
                }
            },
            "required": [
                "segments"
            ]
        },
        "types.CreateSessionRequest": {
            "type": "object",
            "properties": {
                "video_id": {
                    "type": "string"
                }
            },
            "required": [
                "video_id"
            ]
        },
        "types.SeekRequest": {
            "type": "object",
            "properties": {
                "time": {
                    "type": "number"
                }
            },
            "required": [
                "time"
            ]
        },
        "types.ClickRequest": {
            "type": "object",
            "properties": {
                "fraction": {
                    "type": "number"
                }
            },
            "required": [
                "fraction"
            ]
        },
        "types.RateRequest": {
            "type": "object",
            "properties": {
                "rate": {
                    "type": "number"
                }
            },
            "required": [
                "rate"
            ]
        },
        "types.SelectRequest": {
            "type": "object",
            "properties": {
                "annotation_id": {
                    "type": "string"
                }
            },
            "required": [
                "annotation_id"
            ]
        },
        "types.SignalRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "seq": {
                    "type": "integer"
                },
                "local_time": {
                    "type": "number"
                },
                "error": {
                    "type": "string"
                }
            },
            "required": [
                "kind"
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Video Annotator API",
	Description:      "Video catalog with time-ranged annotations, segmented playback and a stateful player API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
