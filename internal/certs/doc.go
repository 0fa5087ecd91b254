// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package certs issues the self-signed certificate used by the TLS echo
// service.
//
// [EnsureCertificate] is idempotent by file presence only: when a file
// already exists at the target path it is left untouched and never
// inspected, even if it is corrupt or expired. Otherwise a fresh RSA-2048
// key and a SHA-512 signed X.509 certificate are generated and written, key
// first, as two PEM blocks in a single file.
package certs
