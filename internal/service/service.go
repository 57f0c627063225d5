// Package service holds one service per entity. Most operations pass straight
// through to the embedded store; the services add duplicate checks, input
// shape checks and audit entries.
package service

import (
	"errors"
	"fmt"

	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
)

var (
	ErrDuplicateName = errors.New("name already exists")
	ErrInvalidName   = errors.New("invalid name")
)

// Changes made through the HTML pages carry no login.
const webActor = "web"

type auditor struct {
	log *audit.Writer
}

func (a auditor) record(action models.AuditAction, entity string, id uint, before, after any) {
	a.log.Record(audit.LogOptions{
		UserName:    webActor,
		EntityType:  entity,
		EntityID:    id,
		Action:      action,
		Description: fmt.Sprintf("%s %s #%d", entity, action, id),
		Before:      before,
		After:       after,
	})
}

type nameLookup interface {
	IDByName(name string) (uint, bool, error)
}

// ensureNameFree fails with ErrDuplicateName when a row other than self
// already holds name. Pass self = 0 when creating.
func ensureNameFree(t nameLookup, name string, self uint) error {
	id, found, err := t.IDByName(name)
	if err != nil {
		return err
	}
	if found && id != self {
		return ErrDuplicateName
	}
	return nil
}
