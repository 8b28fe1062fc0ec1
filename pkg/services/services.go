// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package services resolves credentials of services bound to an application.
package services

import (
	"fmt"
	"regexp"
	"sort"
)

// Credentials holds the free-form credentials of a bound service.
type Credentials map[string]interface{}

// String returns the value for key if it is present and a string.
func (c Credentials) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Service is a single service bound to the application.
type Service struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Plan        string      `json:"plan"`
	Tags        []string    `json:"tags"`
	Credentials Credentials `json:"credentials"`
}

func (s Service) matches(pattern *regexp.Regexp) bool {
	if pattern.MatchString(s.Name) || pattern.MatchString(s.Label) {
		return true
	}
	for _, t := range s.Tags {
		if pattern.MatchString(t) {
			return true
		}
	}
	return false
}

func (s Service) hasCredentials(keys []string) bool {
	for _, k := range keys {
		if _, ok := s.Credentials[k]; !ok {
			return false
		}
	}
	return true
}

// MatchKind distinguishes an unbound service from an ambiguously bound one.
type MatchKind int

const (
	// MatchNone means no bound service matched.
	MatchNone MatchKind = iota
	// MatchOne means exactly one bound service matched.
	MatchOne
	// MatchMany means two or more bound services matched.
	MatchMany
)

func (k MatchKind) String() string {
	switch k {
	case MatchNone:
		return "none"
	case MatchOne:
		return "one"
	case MatchMany:
		return "many"
	}
	return fmt.Sprintf("MatchKind(%d)", int(k))
}

// Match is the result of looking up services by pattern.
// Service is only set when Kind is MatchOne; Names lists every matching service.
type Match struct {
	Kind    MatchKind
	Service Service
	Names   []string
}

// Services is the list of services bound to an application.
type Services []Service

// Match returns the services whose name, label or tags match pattern and whose
// credentials contain every key in required.
func (ss Services) Match(pattern *regexp.Regexp, required ...string) Match {
	var found []Service
	for _, s := range ss {
		if s.matches(pattern) && s.hasCredentials(required) {
			found = append(found, s)
		}
	}
	m := Match{}
	for _, s := range found {
		m.Names = append(m.Names, s.Name)
	}
	sort.Strings(m.Names)
	switch len(found) {
	case 0:
		m.Kind = MatchNone
	case 1:
		m.Kind = MatchOne
		m.Service = found[0]
	default:
		m.Kind = MatchMany
	}
	return m
}

// CountMatching returns the number of services matching pattern that expose requiredKey.
func (ss Services) CountMatching(pattern *regexp.Regexp, requiredKey string) int {
	return len(ss.Match(pattern, requiredKey).Names)
}

// FindOne returns the credentials of the only service matching pattern.
// It returns false when zero or several services match.
func (ss Services) FindOne(pattern *regexp.Regexp) (Credentials, bool) {
	m := ss.Match(pattern)
	if m.Kind != MatchOne {
		return nil, false
	}
	return m.Service.Credentials, true
}
