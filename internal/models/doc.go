// package models defines the data model for the Training Partner client:
// programs and their exercise rows as exchanged with the backend, plus the
// per-field validation state driving the forms.
package models
