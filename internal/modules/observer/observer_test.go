package observer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjectsNotifyInOrder(t *testing.T) {
	var got []string
	s := &Subjects{}
	s.Attach(Func(func(event string, data interface{}) { got = append(got, "a:"+event) }))
	s.Attach(Func(func(event string, data interface{}) { got = append(got, "b:"+event+":"+data.(string)) }))
	s.Notify("state", "completed")
	require.Equal(t, []string{"a:state", "b:state:completed"}, got)
}
