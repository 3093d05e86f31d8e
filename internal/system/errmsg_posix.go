//go:build !windows

package system

// RenderError returns the text of err. Errors from process creation already
// embed the strerror description of the failing call.
func RenderError(err error) string {
	return err.Error()
}
