// Package testinfra starts throwaway containers for integration tests.
//
// Tests that need PostgreSQL call NewPostgresContainer once per package and
// share the returned DSN:
//
//	testinfra.SkipIfNoDocker(t)
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer pg.Terminate(ctx)
//
// Tests are skipped when no container runtime is reachable.
package testinfra
