package queue

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Job is one S3 event notification document taken off the queue.
type Job struct {
	Event events.S3Event
}

func DeserializeJob(data string) (*Job, error) {
	var event events.S3Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	if len(event.Records) == 0 {
		return nil, fmt.Errorf("failed to deserialize job: no records")
	}
	return &Job{Event: event}, nil
}

func SerializeJob(job Job) (string, error) {
	bytes, err := json.Marshal(job.Event)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job: %w", err)
	}
	return string(bytes), nil
}

// NewObjectCreatedJob builds the event a bucket would emit for a single new object.
func NewObjectCreatedJob(bucket, key string, size int64) Job {
	return Job{Event: events.S3Event{
		Records: []events.S3EventRecord{{
			EventSource: "aws:s3",
			EventName:   "ObjectCreated:Put",
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: bucket},
				Object: events.S3Object{Key: key, Size: size},
			},
		}},
	}}
}
