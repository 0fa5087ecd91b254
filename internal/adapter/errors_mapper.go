// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns a [*DownstreamError] unless the response status is
// exactly the endpoint's expected status. 2xx codes other than the expected
// one and every 3xx are failures too.
func mapHTTPError(ep Endpoint, url string, resp *resty.Response) error {
	if resp.StatusCode() == ep.ExpectedStatus {
		return nil
	}

	return &DownstreamError{URL: url, StatusCode: resp.StatusCode()}
}
