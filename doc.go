// Package taskman provides a Go client for the task-manager service.
//
// The package glues typed resource services (tasks, categories, users,
// admin) to a shared session core:
//   - a durable credential/preference store,
//   - session facts (authenticated, role, subject) derived from the
//     bearer token's claims,
//   - a request interceptor that attaches the credential and reacts to
//     401/403 with session teardown and navigation,
//   - a loading coordinator driving the global progress indicator,
//   - a router with access gates for protected views.
//
// Example:
//
//	cli, _ := taskman.New("http://localhost:8080",
//		taskman.WithStore(store.NewFileStore("file:///home/me/.taskman/state.json")))
//	if _, err := cli.Login(ctx, taskman.AuthRequest{Email: email, Password: password}); err != nil {
//		// err.Error() is a user-facing message
//	}
//	tasks, err := cli.Tasks.List(ctx, taskman.StatusTodo)
package taskman
