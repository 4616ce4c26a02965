// Package infra provisions the backing infrastructure for table-backed
// objects (feature views and feature tables; never entities). The local
// provider keeps one online-store table per object in a sqlite database.
package infra

import "context"

// Provisioner reconciles online infrastructure with an applied plan.
type Provisioner interface {
	// Update deploys infrastructure for every object name in deploy and
	// removes it for every name in remove.
	Update(ctx context.Context, project string, deploy, remove []string) error
	// Teardown removes everything provisioned for the project.
	Teardown(ctx context.Context, project string) error
}

// Noop is the provisioner for repos with no online infrastructure.
type Noop struct{}

func (Noop) Update(context.Context, string, []string, []string) error { return nil }
func (Noop) Teardown(context.Context, string) error                   { return nil }

var _ Provisioner = Noop{}
