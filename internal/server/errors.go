// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no handler provided")
)
