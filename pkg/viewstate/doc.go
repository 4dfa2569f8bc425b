// Package viewstate bridges arbitrary operation states into the small closed
// set of states a generic UI layer renders: idle, processing, and error.
//
// The package revolves around two pieces:
//   - ViewState      – a closed tagged union of the UI-facing states
//   - OperationState – the capability contract a task's state type implements
//
// A task models its own progress however it likes (ready, in progress,
// failed, retrying, ...) as long as every variant reduces to exactly one
// ViewState through the OperationState interface. The mapping is required to
// be pure and total: given any operation state value, the UI can always
// obtain a ViewState, and the mapping never feeds back into the task.
//
// Tracker holds the current operation state for a task, derives the
// ViewState on every change, and notifies subscribers, which is typically
// all the host UI needs to drive a loading indicator or alert.
//
// # Usage
//
//	type uploadState string
//
//	const (
//	    uploadReady   uploadState = "ready"
//	    uploadRunning uploadState = "running"
//	    uploadFailed  uploadState = "failed"
//	)
//
//	func (s uploadState) Name() string { return string(s) }
//
//	func (s uploadState) ViewState() viewstate.ViewState {
//	    switch s {
//	    case uploadRunning:
//	        return viewstate.Processing()
//	    case uploadFailed:
//	        return viewstate.Error(errUploadFailed)
//	    default:
//	        return viewstate.Idle()
//	    }
//	}
//
//	tracker := viewstate.NewTracker(uploadReady)
//	tracker.Subscribe(func(s uploadState, v viewstate.ViewState) {
//	    // drive spinner/alert from v
//	})
//	tracker.Set(uploadRunning)
package viewstate
