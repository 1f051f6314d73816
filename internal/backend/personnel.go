package backend

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"matchmind/internal/domain/personnel"
	"matchmind/internal/domain/project"
)

func (c *Client) ListEmployees(ctx context.Context) ([]personnel.Employee, error) {
	in := call{method: http.MethodGet, path: PathEmployees}
	body, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	return decodeList[personnel.Employee](c.log, in, body, "employees"), nil
}

func (c *Client) CreateEmployee(ctx context.Context, payload personnel.NewEmployee) (personnel.Employee, error) {
	in := call{method: http.MethodPost, path: PathEmployees, body: payload}
	body, err := c.do(ctx, in)
	if err != nil {
		return personnel.Employee{}, err
	}
	if wrapped := gjson.GetBytes(body, "employee"); wrapped.IsObject() {
		body = []byte(wrapped.Raw)
	}
	var out personnel.Employee
	if err := decode(in, body, &out); err != nil {
		return personnel.Employee{}, err
	}
	return out, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	in := call{method: http.MethodGet, path: PathProjects}
	body, err := c.do(ctx, in)
	if err != nil {
		return nil, err
	}
	return decodeList[project.Project](c.log, in, body, "projects"), nil
}

func (c *Client) CreateProject(ctx context.Context, payload project.NewProject) (project.Project, error) {
	in := call{method: http.MethodPost, path: PathProjects, body: payload}
	body, err := c.do(ctx, in)
	if err != nil {
		return project.Project{}, err
	}
	if wrapped := gjson.GetBytes(body, "project"); wrapped.IsObject() {
		body = []byte(wrapped.Raw)
	}
	var out project.Project
	if err := decode(in, body, &out); err != nil {
		return project.Project{}, err
	}
	return out, nil
}
