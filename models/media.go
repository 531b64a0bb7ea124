// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Media describes a file stored on the media host.
type Media struct {
	// URL is the durable public address of the file.
	URL string `json:"url"`

	// PublicID is the host-side identifier used to delete the file.
	PublicID string `json:"publicId"`
}
