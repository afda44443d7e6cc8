// Package views contains the page-level controllers. Each controller owns one
// page's fetch lifecycle (idle, loading, ready or failed), issues resource
// calls (in parallel where the page depends on several sources) and derives
// display state for the presentation layer. Controllers block until every
// required call has settled, so a page is never rendered from partial data
// and no late resolution can touch state after Load returns.
package views

// State is the fetch lifecycle of a page.
type State string

// Page states. Failed pages carry a user-facing message and offer a manual
// retry; there is no automatic retry.
const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// pageState is embedded by controllers to share the lifecycle bookkeeping.
type pageState struct {
	state  State
	errMsg string
}

func newPageState() pageState {
	return pageState{state: StateIdle}
}

// State returns the page's current lifecycle state.
func (p *pageState) State() State {
	return p.state
}

// ErrorMessage returns the user-facing message for a failed page.
func (p *pageState) ErrorMessage() string {
	return p.errMsg
}

func (p *pageState) setLoading() {
	p.state = StateLoading
	p.errMsg = ""
}

func (p *pageState) setReady() {
	p.state = StateReady
	p.errMsg = ""
}

func (p *pageState) setFailed(msg string) {
	p.state = StateFailed
	p.errMsg = msg
}
