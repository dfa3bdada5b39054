package redisinfo

import "testing"

const sampleInfo = "# Server\r\n" +
	"redis_version:7.2.4\r\n" +
	"uptime_in_seconds:86642\r\n" +
	"\r\n" +
	"# Memory\r\n" +
	"used_memory:1048576\r\n" +
	"mem_fragmentation_ratio:1.23\r\n" +
	"maxmemory:0\r\n" +
	"not a field line\r\n" +
	"# Keyspace\r\n" +
	"db0:keys=421,expires=119,avg_ttl=3600\r\n" +
	"db2:keys=7,expires=0,avg_ttl=0\r\n"

func TestParse(t *testing.T) {
	info := Parse(sampleInfo)

	if v, ok := info.Get("redis_version"); !ok || v != "7.2.4" {
		t.Fatalf("redis_version = %q, %v", v, ok)
	}
	if _, ok := info.Get("# Server"); ok {
		t.Fatal("section header leaked into fields")
	}
	if _, ok := info.Get("not a field line"); ok {
		t.Fatal("malformed line leaked into fields")
	}
}

func TestInfo_typedAccessors(t *testing.T) {
	info := Parse(sampleInfo)

	if n, ok := info.Int("used_memory"); !ok || n != 1048576 {
		t.Fatalf("used_memory = %d, %v", n, ok)
	}
	if f, ok := info.Float("mem_fragmentation_ratio"); !ok || f != 1.23 {
		t.Fatalf("mem_fragmentation_ratio = %f, %v", f, ok)
	}
	if _, ok := info.Int("redis_version"); ok {
		t.Fatal("non-integer field parsed as int")
	}
	if _, ok := info.Int("missing"); ok {
		t.Fatal("missing field parsed as int")
	}
}

func TestInfo_Keyspaces(t *testing.T) {
	info := Parse(sampleInfo)

	spaces := info.Keyspaces()
	if len(spaces) != 2 {
		t.Fatalf("got %d keyspaces, want 2", len(spaces))
	}
	if spaces[0].DB != "db0" || spaces[0].Keys != 421 || spaces[0].Expires != 119 {
		t.Fatalf("db0 = %+v", spaces[0])
	}
	if spaces[1].DB != "db2" || spaces[1].Keys != 7 {
		t.Fatalf("db2 = %+v", spaces[1])
	}
}

func TestInfo_Keyspaces_numericOrder(t *testing.T) {
	info := Parse("db10:keys=1,expires=0,avg_ttl=0\n" +
		"db2:keys=2,expires=0,avg_ttl=0\n" +
		"db0:keys=3,expires=0,avg_ttl=0\n")

	spaces := info.Keyspaces()
	if len(spaces) != 3 {
		t.Fatalf("got %d keyspaces, want 3", len(spaces))
	}
	for i, want := range []string{"db0", "db2", "db10"} {
		if spaces[i].DB != want {
			t.Fatalf("spaces[%d].DB = %q, want %q", i, spaces[i].DB, want)
		}
	}
}

func TestInfo_Keyspaces_ignoresNonDatabaseFields(t *testing.T) {
	info := Parse("dbsize_human:1K\ndb0:keys=3,expires=0,avg_ttl=0\n")

	spaces := info.Keyspaces()
	if len(spaces) != 1 || spaces[0].DB != "db0" {
		t.Fatalf("got %+v, want just db0", spaces)
	}
}
