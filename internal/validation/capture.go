package validation

import "strings"

// CaptureValidator checks the path segments a vendor route captured before
// they are spliced into an upstream URL.
type CaptureValidator struct {
	maxPathLength    int
	maxCaptureLength int
	optional         map[string]bool
}

func NewCaptureValidator(maxPathLength, maxCaptureLength int, optional ...string) *CaptureValidator {
	v := &CaptureValidator{
		maxPathLength:    maxPathLength,
		maxCaptureLength: maxCaptureLength,
		optional:         make(map[string]bool, len(optional)),
	}
	for _, name := range optional {
		v.optional[name] = true
	}
	return v
}

func (v *CaptureValidator) ValidatePath(path string) error {
	if len(path) > v.maxPathLength {
		return ErrPathTooLong
	}
	return nil
}

func (v *CaptureValidator) ValidateCaptures(captures map[string]string) error {
	for name, value := range captures {
		if err := v.validateCapture(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (v *CaptureValidator) validateCapture(name, value string) error {
	if value == "" {
		if v.optional[name] {
			return nil
		}
		return ErrEmptyCapture
	}
	if len(value) > v.maxCaptureLength {
		return ErrCaptureTooLong
	}
	if strings.ContainsAny(value, "?#\\") {
		return ErrUnsafeCapture
	}
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return ErrUnsafeCapture
		}
	}
	for _, segment := range strings.Split(value, "/") {
		switch segment {
		case "":
			return ErrEmptyCapture
		case ".", "..":
			return ErrPathTraversal
		}
	}
	return nil
}
