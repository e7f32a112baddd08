package model

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kinds of stored artifacts (collection: files).
const (
	FileOfferLetter      = "offer_letter"
	FileNoc              = "noc"
	FileWeeklySubmission = "weekly_submission"
	FileProgressProof    = "progress_proof"
	FileCertificate      = "certificate"
)

// StoredFile is one uploaded artifact kept in MongoDB. Relational rows hold
// only the hex ObjectID plus filename/mimetype; the payload lives here.
// OwnerID and Department are denormalized so the serve endpoint can check
// access with a single lookup.
type StoredFile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     uuid.UUID          `bson:"ownerId"`    // student the artifact belongs to
	Department  string             `bson:"department"` // owner's department, for faculty scoping
	Kind        string             `bson:"kind"`
	FileName    string             `bson:"fileName"`
	ContentType string             `bson:"contentType"`
	Data        []byte             `bson:"data"`
	UploadedAt  time.Time          `bson:"uploadedAt"`
}
