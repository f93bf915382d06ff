/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package dtr

import (
	"errors"
	"fmt"
)

// ErrShellCreationFailed matches every failure to publish a shell to the
// registry, including failed submodel submissions of that shell.
var ErrShellCreationFailed = errors.New("shell creation in digital twin registry failed")

// ShellCreationError carries the asset whose shell could not be published.
type ShellCreationError struct {
	AssetID string
	Err     error
}

func (e *ShellCreationError) Error() string {
	return fmt.Sprintf("creating shell for asset %s failed: %v", e.AssetID, e.Err)
}

func (e *ShellCreationError) Unwrap() error { return e.Err }

// Is reports ErrShellCreationFailed as a match.
func (e *ShellCreationError) Is(target error) bool { return target == ErrShellCreationFailed }

// PartialPublicationError is returned when a submodel store rejected a payload.
// Created holds the submodels stored before the failure; they are not removed.
type PartialPublicationError struct {
	AspectType string
	Created    map[string]string
	Err        error
}

func (e *PartialPublicationError) Error() string {
	return fmt.Sprintf("publishing submodel of aspect %s failed after %d created: %v", e.AspectType, len(e.Created), e.Err)
}

func (e *PartialPublicationError) Unwrap() error { return e.Err }

// InvalidAspectTypeError is returned for aspect types without a '#' separated short name.
type InvalidAspectTypeError struct {
	AspectType string
}

func (e *InvalidAspectTypeError) Error() string {
	return fmt.Sprintf("aspect type %q has no short name after '#'", e.AspectType)
}

// CreateShellError is a non-success response of the registry.
type CreateShellError struct {
	Status int
	Body   string
}

func (e *CreateShellError) Error() string {
	return fmt.Sprintf("registry rejected shell descriptor: status %d: %s", e.Status, e.Body)
}
