// Package models defines the entities exchanged with the job application backend.
//
// All types are DTOs: the backend owns them and the client only caches or renders them.
//   - [User] : The applicant profile, keyed by email, with a backend-assigned ID once saved
//   - [Profile] : The editable subset of [User] submitted from the profile form
//   - [Job] : A search result; HREmail decides between easy and manual apply
//   - [Application] : An apply attempt whose Status is authoritative from the backend
//
// [StatusClassOf] and [StatusLabel] map an application status to its display badge.
package models
