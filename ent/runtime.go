// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/faraz/beestudy/ent/reviewevent"
	"github.com/faraz/beestudy/ent/schema"
	"github.com/faraz/beestudy/ent/sessionevent"
	"github.com/faraz/beestudy/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescTopicID is the schema descriptor for topic_id field.
	revieweventDescTopicID := revieweventFields[0].Descriptor()
	// reviewevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	reviewevent.TopicIDValidator = revieweventDescTopicID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescResultID is the schema descriptor for result_id field.
	sessioneventDescResultID := sessioneventFields[0].Descriptor()
	// sessionevent.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	sessionevent.ResultIDValidator = sessioneventDescResultID.Validators[0].(func(string) error)
	// sessioneventDescSubject is the schema descriptor for subject field.
	sessioneventDescSubject := sessioneventFields[1].Descriptor()
	// sessionevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	sessionevent.SubjectValidator = sessioneventDescSubject.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescTotal is the schema descriptor for total field.
	sessioneventDescTotal := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotal holds the default value on creation for the total field.
	sessionevent.DefaultTotal = sessioneventDescTotal.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
