// Package flows implements the request/response flows of the job application client.
//
// # Flows
//
// The [Controller] exposes one method per user action:
//
//  1. [Controller.SubmitProfile] : register the profile form
//     - POST /users/, then persist the returned user as the current user
//     - "Email already registered" is reconciled with GET /users/{email}
//     - a fresh registration opens the search section and runs an empty-query search after [SearchDelay]
//
//  2. [Controller.SearchJobs] : search jobs by query and location
//     - an empty query needs a current user (the backend suggests jobs from the profile)
//     - requests are sequenced and only the latest response renders
//
//  3. [Controller.Apply] : apply the current user to a job
//     - the backend either emails the hiring contact or answers manual_apply_required
//     - a 404 means the stored user is unknown to the backend and sends the user back to the profile form
//
//  4. [Controller.LoadApplications] : list the current user's applications
//     - failures are logged, never shown
//
// [Controller.Start] restores the stored user at process start and [Controller.Navigate] switches sections.
//
// # Presentation
//
// Flows never touch a UI toolkit. All output goes through the [Renderer] interface, the [toast.Notifier] and the
// [router.Router], so the same controller drives the bubbletea TUI and the plain-text CLI.
//
// # Concurrency
//
// Methods may be called from any goroutine. The current user lives in the [session.Manager]; the deferred search
// after a profile save runs on the injected [shared.Scheduler] and can be cancelled with [Controller.Close] or
// awaited with [Controller.Wait].
package flows
