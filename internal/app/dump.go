package app

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// registryDump prints the project's full persisted registry state. This is a
// debugging surface; the output format carries no compatibility promise.
func (a *App) registryDump(ctx context.Context) error {
	objs, err := a.store.Registry().Dump(ctx, a.cfg.Project)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.outW, "Warning: registry-dump is for debugging only; the output format may change without notice.")

	data, err := yaml.Marshal(objs)
	if err != nil {
		return fmt.Errorf("encoding registry dump: %w", err)
	}
	_, err = a.outW.Write(data)
	return err
}
