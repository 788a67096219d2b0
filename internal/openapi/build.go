package openapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Version is the API document version.
const Version = "0.1.0"

func intPtr(n int) *int { return &n }

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func str() *Schema                { return &Schema{Type: "string"} }
func nullableStr() *Schema        { return &Schema{Type: "string", Nullable: true} }
func boolean() *Schema            { return &Schema{Type: "boolean"} }
func dateTime() *Schema           { return &Schema{Type: "string", Format: "date-time"} }
func stringArray() *Schema        { return &Schema{Type: "array", Items: str()} }
func arrayOf(name string) *Schema { return &Schema{Type: "array", Items: ref(name)} }

func jsonBody(s *Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: s}}
}

// Build assembles the API document for the service's routes and schemas.
// It is the single source the /openapi.json endpoint and the offline export
// tool both consume.
func Build(serviceName string) *Document {
	return &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       serviceName,
			Description: "Backend API providing endpoints for tasks and habits with basic in-memory storage.",
			Version:     Version,
		},
		Tags: []Tag{
			{Name: "Health", Description: "Service health and status endpoints."},
			{Name: "Tasks", Description: "CRUD operations for to-do tasks."},
			{Name: "Habits", Description: "CRUD operations for habits."},
		},
		Paths:      buildPaths(),
		Components: Components{Schemas: buildSchemas()},
	}
}

func buildPaths() map[string]PathItem {
	healthOp := Operation{
		Summary: "Health Check",
		Tags:    []string{"Health"},
		Responses: map[string]Response{
			"200": {Description: "Service liveness payload", Content: jsonBody(ref("Health"))},
		},
	}

	return map[string]PathItem{
		"/":       {"get": healthOp},
		"/health": {"get": healthOp},

		"/tasks": {
			"get": Operation{
				Summary:     "List tasks",
				Description: "Retrieve a paginated list of tasks with optional tag and completion filters.",
				Tags:        []string{"Tasks"},
				Parameters: append(pageParams(50),
					Parameter{Name: "tag", In: "query", Description: "Filter by tag", Schema: str()},
					Parameter{Name: "completed", In: "query", Description: "Filter by completion status", Schema: boolean()},
				),
				Responses: map[string]Response{
					"200": {Description: "Tasks for the requested page", Content: jsonBody(arrayOf("Task"))},
					"422": {Description: "Invalid query parameters", Content: jsonBody(ref("Error"))},
				},
			},
			"post": Operation{
				Summary:     "Create task",
				Description: "Create a new task and return the created entity.",
				Tags:        []string{"Tasks"},
				RequestBody: &RequestBody{Required: true, Content: jsonBody(ref("TaskCreate"))},
				Responses: map[string]Response{
					"201": {Description: "The created task", Content: jsonBody(ref("Task"))},
					"422": {Description: "Missing or invalid fields", Content: jsonBody(ref("Error"))},
				},
			},
		},
		"/tasks/{id}": {
			"get": Operation{
				Summary:    "Get task by ID",
				Tags:       []string{"Tasks"},
				Parameters: []Parameter{idParam()},
				Responses: map[string]Response{
					"200": {Description: "The requested task", Content: jsonBody(ref("Task"))},
					"404": {Description: "Task not found", Content: jsonBody(ref("Error"))},
				},
			},
			"patch": Operation{
				Summary:     "Update task",
				Description: "Apply partial updates to a task by ID. Only fields present in the payload are changed.",
				Tags:        []string{"Tasks"},
				Parameters:  []Parameter{idParam()},
				RequestBody: &RequestBody{Required: true, Content: jsonBody(ref("TaskUpdate"))},
				Responses: map[string]Response{
					"200": {Description: "The updated task", Content: jsonBody(ref("Task"))},
					"404": {Description: "Task not found", Content: jsonBody(ref("Error"))},
					"422": {Description: "Invalid fields", Content: jsonBody(ref("Error"))},
				},
			},
			"delete": Operation{
				Summary:    "Delete task",
				Tags:       []string{"Tasks"},
				Parameters: []Parameter{idParam()},
				Responses: map[string]Response{
					"204": {Description: "Task deleted"},
					"404": {Description: "Task not found", Content: jsonBody(ref("Error"))},
				},
			},
		},

		"/habits": {
			"get": Operation{
				Summary:     "List habits",
				Description: "Retrieve a paginated list of habits with an optional tag filter.",
				Tags:        []string{"Habits"},
				Parameters: append(pageParams(20),
					Parameter{Name: "tag", In: "query", Description: "Filter by tag", Schema: str()},
				),
				Responses: map[string]Response{
					"200": {Description: "Habits for the requested page", Content: jsonBody(arrayOf("Habit"))},
					"422": {Description: "Invalid query parameters", Content: jsonBody(ref("Error"))},
				},
			},
			"post": Operation{
				Summary:     "Create habit",
				Description: "Create a new habit and return the created entity.",
				Tags:        []string{"Habits"},
				RequestBody: &RequestBody{Required: true, Content: jsonBody(ref("HabitCreate"))},
				Responses: map[string]Response{
					"201": {Description: "The created habit", Content: jsonBody(ref("Habit"))},
					"422": {Description: "Missing or invalid fields", Content: jsonBody(ref("Error"))},
				},
			},
		},
		"/habits/{id}": {
			"get": Operation{
				Summary:    "Get habit by ID",
				Tags:       []string{"Habits"},
				Parameters: []Parameter{idParam()},
				Responses: map[string]Response{
					"200": {Description: "The requested habit", Content: jsonBody(ref("Habit"))},
					"404": {Description: "Habit not found", Content: jsonBody(ref("Error"))},
				},
			},
			"patch": Operation{
				Summary:     "Update habit",
				Description: "Apply partial updates to a habit by ID. Only fields present in the payload are changed.",
				Tags:        []string{"Habits"},
				Parameters:  []Parameter{idParam()},
				RequestBody: &RequestBody{Required: true, Content: jsonBody(ref("HabitUpdate"))},
				Responses: map[string]Response{
					"200": {Description: "The updated habit", Content: jsonBody(ref("Habit"))},
					"404": {Description: "Habit not found", Content: jsonBody(ref("Error"))},
					"422": {Description: "Invalid fields", Content: jsonBody(ref("Error"))},
				},
			},
			"delete": Operation{
				Summary:    "Delete habit",
				Tags:       []string{"Habits"},
				Parameters: []Parameter{idParam()},
				Responses: map[string]Response{
					"204": {Description: "Habit deleted"},
					"404": {Description: "Habit not found", Content: jsonBody(ref("Error"))},
				},
			},
		},
	}
}

func idParam() Parameter {
	return Parameter{
		Name:     "id",
		In:       "path",
		Required: true,
		Schema:   str(),
	}
}

func pageParams(defaultSize int) []Parameter {
	return []Parameter{
		{
			Name:        "page",
			In:          "query",
			Description: "Page index starting from 1",
			Schema:      &Schema{Type: "integer", Default: 1, Minimum: intPtr(1)},
		},
		{
			Name:        "size",
			In:          "query",
			Description: "Page size",
			Schema:      &Schema{Type: "integer", Default: defaultSize, Minimum: intPtr(1), Maximum: intPtr(200)},
		},
	}
}

func buildSchemas() map[string]*Schema {
	taskFields := map[string]*Schema{
		"title":       str(),
		"description": nullableStr(),
		"due_date":    {Type: "string", Format: "date", Nullable: true},
		"priority":    {Type: "integer", Default: 3, Minimum: intPtr(1), Maximum: intPtr(5)},
		"tags":        stringArray(),
		"completed":   {Type: "boolean", Default: false},
	}
	habitFields := map[string]*Schema{
		"name":        str(),
		"description": nullableStr(),
		"frequency":   {Type: "string", Default: "daily"},
		"target":      {Type: "integer", Nullable: true},
		"unit":        nullableStr(),
		"tags":        stringArray(),
	}

	return map[string]*Schema{
		"Health": {
			Type: "object",
			Properties: map[string]*Schema{
				"message": str(),
				"service": str(),
			},
			Required: []string{"message", "service"},
		},
		"Error": {
			Type: "object",
			Properties: map[string]*Schema{
				"error": str(),
				"details": {Type: "array", Items: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"field":   str(),
						"message": str(),
					},
					Required: []string{"field", "message"},
				}},
				"trace_id": str(),
			},
			Required: []string{"error"},
		},
		"Task":        entitySchema(taskFields, []string{"id", "title", "priority", "tags", "completed", "created_at", "updated_at"}),
		"TaskCreate":  objectSchema(taskFields, []string{"title"}),
		"TaskUpdate":  objectSchema(taskFields, nil),
		"Habit":       entitySchema(habitFields, []string{"id", "name", "frequency", "tags", "created_at", "updated_at"}),
		"HabitCreate": objectSchema(habitFields, []string{"name"}),
		"HabitUpdate": objectSchema(habitFields, nil),
	}
}

// objectSchema builds an object schema from a shared field set.
func objectSchema(fields map[string]*Schema, required []string) *Schema {
	props := make(map[string]*Schema, len(fields))
	for name, schema := range fields {
		props[name] = schema
	}
	return &Schema{Type: "object", Properties: props, Required: required}
}

// entitySchema extends a field set with the server-assigned fields.
func entitySchema(fields map[string]*Schema, required []string) *Schema {
	s := objectSchema(fields, required)
	s.Properties["id"] = str()
	s.Properties["created_at"] = dateTime()
	s.Properties["updated_at"] = dateTime()
	return s
}

// Handler serves the document as JSON, mirroring the path FastAPI-style
// frameworks expose by convention.
func Handler(serviceName string) http.HandlerFunc {
	doc := Build(serviceName)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, doc)
	}
}

func writeJSON(w http.ResponseWriter, doc *Document) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		slog.Error("failed to encode API document", "error", err)
	}
}
