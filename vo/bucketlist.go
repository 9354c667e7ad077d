package vo

import "time"

type Bucket struct {
	Name string
	From time.Duration
	To   time.Duration
}

type BucketList []Bucket

// GetBucketList returns the latency buckets used by the scan summary report.
func GetBucketList() BucketList {
	return BucketList{
		Bucket{
			Name: "fast",
			From: time.Duration(time.Millisecond * 0),
			To:   time.Duration(time.Millisecond * 100),
		},
		Bucket{
			Name: "ok",
			From: time.Duration(time.Millisecond * 100),
			To:   time.Duration(time.Millisecond * 500),
		},
		Bucket{
			Name: "slow",
			From: time.Duration(time.Millisecond * 500),
			To:   time.Duration(time.Millisecond * 2000),
		},
		Bucket{
			Name: "very slow",
			From: time.Duration(time.Millisecond * 2000),
			To:   time.Duration(time.Second * 5),
		},
		Bucket{
			Name: "close to timeout",
			From: time.Duration(time.Second * 5),
			To:   time.Duration(time.Hour),
		},
	}
}
