package chartfeed

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{
		root: root,
	}
}

type FileStorage struct {
	root string
}

func (stg *FileStorage) fileNameByKey(key string) string {
	return path.Join(stg.root, key)
}

func (stg *FileStorage) Keys() (keys []string, err error) {
	entries, err := os.ReadDir(stg.root)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
		}

		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		keys = append(keys, entry.Name())
	}

	return
}

func (stg *FileStorage) Load(key string) (samples []Sample, err error) {
	d, err := os.ReadFile(stg.fileNameByKey(key))
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &samples)

	return
}

func (stg *FileStorage) Save(key string, samples []Sample) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(samples)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileNameByKey(key), d, 0600)

	return
}
