package result

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rb-26/dsa/pkg/dsa/printers"
)

// ExitCode mirrors the enumerated error type of a toy shell executor.
type ExitCode int

const (
	exitSuccess ExitCode = iota
	exitCommandNotFound
	exitPermissionDenied
	exitUnknown
)

var exitCodeNames = map[ExitCode]string{
	exitSuccess:          "Success",
	exitCommandNotFound:  "Command Not Found",
	exitPermissionDenied: "Permission Denied",
	exitUnknown:          "Unknown Error",
}

func TestPrint_OkFraming(t *testing.T) {
	t.Parallel()
	r := Success[string, string]("Operation succeeded")

	var buf bytes.Buffer
	r.Print(&buf, printers.Value[string], printers.Value[string])
	assert.Equal(t, "Ok { Operation succeeded }", buf.String())
}

func TestPrint_ErrorFraming(t *testing.T) {
	t.Parallel()
	r := Fail[string, string]("Operation failed")

	var buf bytes.Buffer
	r.Print(&buf, printers.Value[string], printers.Value[string])
	assert.Equal(t, "Error { Operation failed }", buf.String())
}

func TestPrintln_AppendsNewline(t *testing.T) {
	t.Parallel()
	r := Success[string, string]("done")

	var buf bytes.Buffer
	r.Println(&buf, printers.Value[string], printers.Value[string])
	assert.Equal(t, "Ok { done }\n", buf.String())
}

func TestPrint_AbsentHandle(t *testing.T) {
	t.Parallel()
	var absent *Result[string, string]

	var buf bytes.Buffer
	absent.Print(&buf, printers.Value[string], printers.Value[string])
	absent.Println(&buf, printers.Value[string], printers.Value[string])
	assert.Empty(t, buf.String())
}

func TestDebug_Ok(t *testing.T) {
	t.Parallel()
	r := Success[string, string]("Operation succeeded")

	var buf bytes.Buffer
	r.Debug(&buf, printers.Value[string], printers.Value[string])

	expected := "Result::Ok<string, string> {\n" +
		"  is_ok: true,\n" +
		"  value: Operation succeeded\n" +
		"}\n"
	assert.Equal(t, expected, buf.String())
}

func TestDebug_Error(t *testing.T) {
	t.Parallel()
	r := Fail[string, string]("Operation failed")

	var buf bytes.Buffer
	r.Debug(&buf, printers.Value[string], printers.Value[string])

	expected := "Result::Error<string, string> {\n" +
		"  is_ok: false,\n" +
		"  value: Operation failed\n" +
		"}\n"
	assert.Equal(t, expected, buf.String())
}

func TestDebug_EnumError(t *testing.T) {
	t.Parallel()
	// The enumerated error renders through its name table, not as the raw
	// numeric discriminant.
	r := Fail[string, ExitCode](exitCommandNotFound)

	var buf bytes.Buffer
	r.Debug(&buf, printers.Value[string], printers.Enum(exitCodeNames))

	expected := "Result::Error<string, ExitCode> {\n" +
		"  is_ok: false,\n" +
		"  value: Command Not Found\n" +
		"}\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrint_EnumError(t *testing.T) {
	t.Parallel()
	r := Fail[string, ExitCode](exitPermissionDenied)

	var buf bytes.Buffer
	r.Print(&buf, printers.Value[string], printers.Enum(exitCodeNames))
	assert.Equal(t, "Error { Permission Denied }", buf.String())
}

func TestDebug_AbsentHandle(t *testing.T) {
	t.Parallel()
	var absent *Result[string, ExitCode]

	var buf bytes.Buffer
	absent.Debug(&buf, printers.Value[string], printers.Enum(exitCodeNames))
	assert.Equal(t, "Result<string, ExitCode> { nil }\n", buf.String())
}
