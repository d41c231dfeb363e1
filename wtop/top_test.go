package wtop

import (
	"testing"
)

type mockRunner struct {
	output []byte
}

func (r *mockRunner) Output(name string, args ...string) ([]byte, error) {
	return r.output, nil
}

func (r *mockRunner) Pipe(stdin []byte, name string, args ...string) ([]byte, error) {
	return r.output, nil
}

const fullXML = `<?xml version='1.0'?>
<job_info>
  <queue_info>
    <Queue-List>
      <name>all.q@node1.local</name>
      <slots_used>8</slots_used>
      <slots_total>12</slots_total>
      <job_list state="running">
        <JB_job_number>101</JB_job_number>
        <JB_name>relax</JB_name>
        <JB_owner>alice</JB_owner>
        <state>r</state>
        <slots>8</slots>
      </job_list>
    </Queue-List>
  </queue_info>
  <job_info>
    <job_list state="pending">
      <JB_job_number>102</JB_job_number>
      <JB_name>sweep</JB_name>
      <JB_owner>bob</JB_owner>
      <state>qw</state>
      <slots>1</slots>
    </job_list>
  </job_info>
</job_info>`

func Test_Top_UpdateSummarizesSnapshot(t *testing.T) {
	top := NewTop(&mockRunner{output: []byte(fullXML)})

	if err := top.Update(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	snap := top.Current()
	if snap == nil || len(snap.Nodes) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	if top.cluster.RunningJobs != 1 || top.cluster.WaitingJobs != 1 {
		t.Errorf("unexpected cluster summary: %+v", top.cluster)
	}
	if top.cluster.FreeSlots != 4 {
		t.Errorf("unexpected free slots: %d", top.cluster.FreeSlots)
	}

	if len(top.users) != 2 || top.users[0].Name != "alice" {
		t.Errorf("unexpected user summaries: %+v", top.users)
	}
}
