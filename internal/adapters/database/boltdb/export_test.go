package boltdb

import bolt "go.etcd.io/bbolt"

// PutRaw writes bytes to the slot unchanged.
func (r *SnapshotRepository) PutRaw(data []byte) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketName)).Put(r.slot, data)
	})
}
