package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// Key prefixes for different data types
const (
	documentRecordPrefix = "docrec"
	documentDatePrefix   = "docrecd"
	documentIDSeq        = "docrecseq"
	chunkRecordPrefix    = "chkrec"
	chunkDocumentPrefix  = "chkrecdoc"
	questionRecordPrefix = "qstrec"
	questionDatePrefix   = "qstrecd"
	questionIDSeq        = "qstrecseq"
	sessionRecordPrefix  = "sesrec"
	sessionDatePrefix    = "sesrecd"
	sessionIDSeq         = "sesrecseq"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentRecordPrefix, id))
}

// makeDocumentDateKey generates a composite key for the upload-date index.
// Format: prefix:timestamp:id
func makeDocumentDateKey(timestamp time.Time, id core.ID) []byte {
	return makeDateKey(documentDatePrefix, timestamp, id)
}

// makePartialDocumentDateKey generates a partial key for date range queries.
func makePartialDocumentDateKey(timestamp time.Time) []byte {
	return makePartialDateKey(documentDatePrefix, timestamp)
}

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkRecordPrefix, id))
}

// makeChunkDocumentKey generates a composite key for the document index.
// Format: prefix:documentID:chunkIndex
// Chunk index is part of the key so iteration yields chunks in order.
func makeChunkDocumentKey(documentID core.ID, chunkIndex int) []byte {
	prefix := chunkDocumentPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(documentID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(chunkIndex))
	return buf
}

// makePartialChunkDocumentKey generates a partial key for per-document queries.
func makePartialChunkDocumentKey(documentID core.ID) []byte {
	prefix := chunkDocumentPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(documentID))
	return buf
}

// makeQuestionKey generates a key for a question record by ID.
func makeQuestionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", questionRecordPrefix, id))
}

// makeQuestionDateKey generates a composite key for the asked-at index.
func makeQuestionDateKey(timestamp time.Time, id core.ID) []byte {
	return makeDateKey(questionDatePrefix, timestamp, id)
}

// makePartialQuestionDateKey generates a partial key for date range queries.
func makePartialQuestionDateKey(timestamp time.Time) []byte {
	return makePartialDateKey(questionDatePrefix, timestamp)
}

// makeSessionKey generates a key for an ideation session by ID.
func makeSessionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", sessionRecordPrefix, id))
}

// makeSessionDateKey generates a composite key for the created-at index.
func makeSessionDateKey(timestamp time.Time, id core.ID) []byte {
	return makeDateKey(sessionDatePrefix, timestamp, id)
}

// makePartialSessionDateKey generates a partial key for date range queries.
func makePartialSessionDateKey(timestamp time.Time) []byte {
	return makePartialDateKey(sessionDatePrefix, timestamp)
}

// makeCheckpointKey generates a key for processor checkpoints.
func makeCheckpointKey(processorType string) []byte {
	return []byte(fmt.Sprintf("%s:chkpt", processorType))
}

// makeDateKey generates a composite date-index key.
// Format: prefix:timestamp:id, timestamps and IDs BigEndian so lexicographic
// sort matches chronological order.
func makeDateKey(prefix string, timestamp time.Time, id core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDateKey generates a partial date-index key for range queries.
func makePartialDateKey(prefix string, timestamp time.Time) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
