// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"fmt"
	"net"
	"strings"
)

// loopbackHosts always pass the domain lock so owners can preview locally.
var loopbackHosts = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
	"::1":       {},
	"[::1]":     {},
	"0.0.0.0":   {},
}

// HostAllowed reports whether a page served from host may render under
// allowList. It applies the same rules as the bootstrap script: an empty list
// allows everything, loopback hosts always pass, otherwise host must equal an
// entry or be a subdomain of one. A port in host is ignored.
func HostAllowed(host string, allowList []string) bool {
	domains := make([]string, 0, len(allowList))
	for _, d := range allowList {
		if d = normaliseDomain(d); d != "" {
			domains = append(domains, d)
		}
	}
	if len(domains) == 0 {
		return true
	}

	host = normaliseHost(host)
	if _, ok := loopbackHosts[host]; ok {
		return true
	}
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// NormaliseDomains lower-cases and de-duplicates a domain lock list. A
// leading "*." is accepted and dropped. Blank entries are skipped.
func NormaliseDomains(list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		d := normaliseDomain(raw)
		if d == "" {
			continue
		}
		if strings.ContainsAny(d, " \t/\\:@?#*") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, raw)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

func normaliseDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	d = strings.TrimPrefix(d, "*.")
	return strings.Trim(d, ".")
}

func normaliseHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(host, ".")
}
