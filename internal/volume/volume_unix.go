//go:build !windows

package volume

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// mountsPath lists the mounted filesystems on Linux.
const mountsPath = "/proc/mounts"

// osProvider reads volume information from procfs and statfs.
type osProvider struct{}

// NewProvider returns the platform volume provider.
func NewProvider() Provider {
	return osProvider{}
}

// FixedVolumes parses /proc/mounts and keeps mount points backed by a
// block device, which filters out pseudo-filesystems like proc, sysfs
// and tmpfs.
func (osProvider) FixedVolumes() ([]string, error) {
	file, err := os.Open(mountsPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	seen := make(map[string]struct{})

	var volumes []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		const minMountFields = 2

		fields := strings.Fields(scanner.Text())
		if len(fields) < minMountFields {
			continue
		}

		device, mountPoint := fields[0], unescapeMount(fields[1])
		if !strings.HasPrefix(device, "/dev/") {
			continue
		}

		if _, ok := seen[mountPoint]; ok {
			continue
		}

		seen[mountPoint] = struct{}{}
		volumes = append(volumes, mountPoint)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return volumes, nil
}

// SpaceOf queries filesystem statistics for the mount point.
func (osProvider) SpaceOf(id string) (Space, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(id, &stat); err != nil {
		return Space{}, err
	}

	blockSize := int64(stat.Bsize)

	total := int64(stat.Blocks) * blockSize
	free := int64(stat.Bfree) * blockSize

	return newSpace(total, free), nil
}

// unescapeMount decodes the octal escapes /proc/mounts uses for
// whitespace and backslashes in mount point paths.
func unescapeMount(path string) string {
	replacer := strings.NewReplacer(
		`\040`, " ",
		`\011`, "\t",
		`\012`, "\n",
		`\134`, `\`,
	)

	return replacer.Replace(path)
}
