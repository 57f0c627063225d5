package web

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// formPage is the add/edit/delete state machine shared by every entity page.
// GET displays, POST submits; a POST carrying delete_<entity> deletes.
type formPage struct {
	entity    string
	title     string
	listLink  string
	duplicate string
	specs     []fieldSpec
	defaults  func() values

	// idParam names the query parameter carrying the row id. editOnly pages
	// have no add mode.
	idParam  string
	editOnly bool

	validate func(v values, mode string) (string, map[string]string)
	load     func(id uint) (values, error)
	create   func(v values) error
	update   func(id uint, v values) error
	remove   func(id uint) error
}

type crudService[T any] interface {
	FindByID(id uint) (*T, error)
	Create(row *T) (uint, error)
	Update(id uint, row *T) (int64, error)
	Delete(id uint) (int64, error)
}

// bindService wires the load and persist hooks of p to a service following
// the common Create/Update/Delete shape.
func bindService[T any](p *formPage, svc crudService[T], toModel func(values) T, fromModel func(*T) values) {
	p.load = func(id uint) (values, error) {
		row, err := svc.FindByID(id)
		if err != nil {
			return nil, err
		}
		return fromModel(row), nil
	}
	p.create = func(v values) error {
		m := toModel(v)
		_, err := svc.Create(&m)
		return err
	}
	p.update = func(id uint, v values) error {
		m := toModel(v)
		_, err := svc.Update(id, &m)
		return err
	}
	p.remove = func(id uint) error {
		n, err := svc.Delete(id)
		if err == nil && n == 0 {
			return store.ErrNotFound
		}
		return err
	}
}

func (p *formPage) notFound() string {
	return p.title + " not found."
}

// failure turns a persistence error into the banner shown above the form.
func (p *formPage) failure(err error, verb string) string {
	switch {
	case errors.Is(err, service.ErrDuplicateName):
		return p.duplicate
	case errors.Is(err, service.ErrInvalidName):
		return "Invalid name."
	case errors.Is(err, service.ErrPasswordRequired):
		return validation.MsgRequiredFields
	case errors.Is(err, store.ErrNotFound):
		return p.notFound()
	}
	logrus.WithError(err).WithFields(logrus.Fields{"entity": p.entity, "action": verb}).Error("persist failed")
	return fmt.Sprintf("An internal error occurred while %s the %s.", verb, strings.ToLower(p.title))
}

func (p *formPage) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("mode", modeAdd)
		if p.editOnly {
			mode = modeEdit
		}
		if mode != modeAdd && mode != modeEdit {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid mode.")
		}

		var id uint
		if mode == modeEdit {
			param := p.idParam
			if param == "" {
				param = "id"
			}
			n, err := strconv.ParseUint(c.Query(param), 10, 64)
			if err != nil || n == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid "+strings.ToLower(p.title)+" ID.")
			}
			id = uint(n)
		}

		view := formView{
			Title:     p.title,
			Heading:   p.heading(mode),
			Mode:      mode,
			Action:    c.OriginalURL(),
			BackLink:  p.listLink,
			ShowForm:  true,
			CSRFToken: csrfToken(c),
		}
		if mode == modeEdit && p.remove != nil {
			view.DeleteField = "delete_" + p.entity
		}

		var (
			v       values
			invalid map[string]string
		)
		switch {
		case c.Method() == fiber.MethodPost && c.FormValue("delete_"+p.entity) != "":
			if mode != modeEdit || p.remove == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Delete requires an existing "+strings.ToLower(p.title)+".")
			}
			if err := p.remove(id); err != nil {
				view.Error = p.failure(err, "deleting")
				if v, err = p.load(id); err != nil {
					v = p.defaults()
					view.ShowForm = false
				}
				break
			}
			view.Success = p.title + " deleted successfully!"
			view.ShowForm = false

		case c.Method() == fiber.MethodPost:
			v = parseValues(c, p.specs)
			var msg string
			if msg, invalid = p.validate(v, mode); msg != "" {
				view.Error = msg
				break
			}
			if mode == modeAdd {
				if err := p.create(v); err != nil {
					view.Error = p.failure(err, "adding")
					break
				}
				view.Success = p.title + " added successfully!"
				v = p.defaults()
				break
			}
			if err := p.update(id, v); err != nil {
				view.Error = p.failure(err, "updating")
				break
			}
			view.Success = p.title + " updated successfully!"

		case mode == modeEdit:
			var err error
			if v, err = p.load(id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fiber.NewError(fiber.StatusNotFound, p.notFound())
				}
				return err
			}

		default:
			v = p.defaults()
		}

		if view.ShowForm {
			fields, err := buildFields(p.specs, v, invalid)
			if err != nil {
				return err
			}
			view.Fields = fields
		}
		return c.Render("form", view, "layout")
	}
}

func (p *formPage) heading(mode string) string {
	if mode == modeEdit {
		return "Edit " + p.title
	}
	return "Add " + p.title
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals(csrfContextKey).(string)
	return token
}

// listRow is one rendered table line.
type listRow struct {
	Cells []string
	Links []link
}

type link struct {
	Href  string
	Label string
}

type listView struct {
	Title        string
	Singular     string
	AddLink      string
	ExportLink   string
	Error        string
	Search       string
	Headers      []string
	Rows         []listRow
	EmptyColspan int
	PageSizes    []option
	Pager        pager
}

// listPage renders a searchable paginated table.
type listPage struct {
	title      string
	singular   string
	editLink   string
	exportLink string
	headers    []string
	count      func(search string) (int64, error)
	rows       func(search string, limit, offset int) ([]listRow, error)
}

type pagedSource[R any] interface {
	GetCount() (int64, error)
	GetCountBySearch(term string) (int64, error)
	GetPaginated(limit, offset int) ([]R, error)
	SearchPaginated(term string, limit, offset int) ([]R, error)
}

// bindSource wires a listPage to a store-shaped source, rendering each row
// with render.
func bindSource[R any](p *listPage, src pagedSource[R], render func(R) listRow) {
	p.count = func(search string) (int64, error) {
		if search == "" {
			return src.GetCount()
		}
		return src.GetCountBySearch(search)
	}
	p.rows = func(search string, limit, offset int) ([]listRow, error) {
		var (
			items []R
			err   error
		)
		if search == "" {
			items, err = src.GetPaginated(limit, offset)
		} else {
			items, err = src.SearchPaginated(search, limit, offset)
		}
		if err != nil {
			return nil, err
		}
		out := make([]listRow, len(items))
		for i, it := range items {
			out[i] = render(it)
		}
		return out, nil
	}
}

func (p *listPage) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := parsePageQuery(c)

		total, err := p.count(q.Search)
		if err != nil {
			return err
		}
		pg := newPager(c.Path(), q, total)
		rows, err := p.rows(q.Search, q.PageSize, (pg.Page-1)*q.PageSize)
		if err != nil {
			return err
		}

		view := listView{
			Title:        p.title,
			Singular:     p.singular,
			Search:       q.Search,
			Headers:      p.headers,
			Rows:         rows,
			EmptyColspan: len(p.headers) + 1,
			PageSizes:    pageSizeOptions(q.PageSize),
			Pager:        pg,
		}
		if p.editLink != "" {
			view.AddLink = p.editLink + "?mode=add"
		}
		if p.exportLink != "" {
			view.ExportLink = p.exportLink
			if q.Search != "" {
				view.ExportLink += "?search=" + urlQueryEscape(q.Search)
			}
		}
		return c.Render("list", view, "layout")
	}
}

func editLinks(editPath string, id uint, extra ...link) []link {
	links := []link{{Href: fmt.Sprintf("%s?mode=edit&id=%d", editPath, id), Label: "Edit"}}
	return append(links, extra...)
}
